package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/Finz-2025/finz-coach/internal/buildinfo"
	"github.com/Finz-2025/finz-coach/internal/client/cli"
	"github.com/Finz-2025/finz-coach/internal/client/client"
	"github.com/Finz-2025/finz-coach/internal/client/config"
	"github.com/Finz-2025/finz-coach/internal/client/services"
	"github.com/Finz-2025/finz-coach/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.AccessToken == "" {
		if cfg.AccessToken, err = cli.PromptAccessToken(os.Stdout); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := client.InitDatabase(ctx, cfg.ProfileDB)
	if err != nil {
		return err
	}
	defer db.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	api := client.NewHTTPClient(cfg.BaseURL, cfg.AccessToken,
		client.WithTokenHeader(cfg.AccessTokenHeader),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithLogger(logger),
		client.WithMetrics(client.NewMetrics(reg)),
	)
	app := cli.NewApp(cfg, logger, api, services.NewProfileService(db, logger), os.Stdin, os.Stdout)

	g, gctx := errgroup.WithContext(ctx)
	replCtx, cancelREPL := context.WithCancel(gctx)
	defer cancelREPL()

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv = &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			logger.Info(gctx, "metrics server listening", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	// A blocked stdin read only returns once stdin is closed.
	go func() {
		<-replCtx.Done()
		if gctx.Err() != nil {
			_ = os.Stdin.Close()
		}
	}()

	g.Go(func() error {
		defer cancelREPL()
		defer func() {
			if srv == nil {
				return
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		return app.Run(replCtx)
	})

	return g.Wait()
}
