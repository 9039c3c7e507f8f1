package cli

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/Finz-2025/finz-coach/internal/client/client"
	"github.com/Finz-2025/finz-coach/internal/client/config"
	"github.com/Finz-2025/finz-coach/internal/client/render"
	"github.com/Finz-2025/finz-coach/internal/client/services"
	"github.com/Finz-2025/finz-coach/internal/client/store"
	"github.com/Finz-2025/finz-coach/internal/client/timestamp"
	"github.com/Finz-2025/finz-coach/internal/common"
	"github.com/Finz-2025/finz-coach/internal/logging"
)

// App is the interactive chat screen: one mounted conversation plus the
// terminal around it.
type App struct {
	config   *config.Config
	log      logging.Logger
	api      client.CoachClient
	profiles services.ProfileService
	norm     *timestamp.Normalizer

	store    *store.Store
	renderer *render.Renderer
	scanner  *bufio.Scanner
	out      io.Writer

	userID   int64
	nickname string
	lastErr  error
}

// NewApp wires an App. Input is read from in and everything user-facing is
// written to out; colour is used only when out is a terminal.
func NewApp(cfg *config.Config, log logging.Logger, api client.CoachClient, profiles services.ProfileService, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.NewNop()
	}
	theme, width := terminalTheme(out)

	return &App{
		config:   cfg,
		log:      log.With("component", "cli"),
		api:      api,
		profiles: profiles,
		norm:     timestamp.New(cfg.DisplayOffset),
		renderer: render.New(theme, width),
		scanner:  bufio.NewScanner(in),
		out:      out,
		userID:   cfg.UserID,
	}
}

// Run mounts the conversation, loads its history and serves the REPL until
// the user quits, input ends or ctx is cancelled. The session is closed on
// return.
func (a *App) Run(ctx context.Context) error {
	if err := a.resolveUser(ctx); err != nil {
		return err
	}

	a.mount()
	defer a.unmount()

	greeting := "FiNZ's 코치 (type 'help' for commands)"
	if a.nickname != "" {
		greeting = a.nickname + "님, " + greeting
	}
	printlnFn(greeting)

	a.store.LoadInitial(ctx, a.userID)
	a.Show()

	runREPL(ctx, a, a.status, a.scanner)
	return nil
}

// resolveUser picks the user to mount: the stored profile when there is
// one, the configured user id otherwise.
func (a *App) resolveUser(ctx context.Context) error {
	if a.profiles == nil {
		return nil
	}
	p, err := a.profiles.Load(ctx)
	switch {
	case errors.Is(err, common.ErrorNoProfile):
		a.log.Info(ctx, "no local profile, using configured user", "user_id", a.userID)
		return nil
	case err != nil:
		return err
	}
	a.userID = p.UserID
	a.nickname = p.Nickname
	a.log.Info(ctx, "profile loaded", "user_id", a.userID)
	return nil
}

func (a *App) mount() {
	a.store = store.New(a.api, a.norm, a.log)
	a.store.Subscribe(a.watch)
}

func (a *App) unmount() {
	if a.store != nil {
		a.store.Close()
	}
}

// watch reports each new error once.
func (a *App) watch(st store.State) {
	if st.Err == nil || st.Err == a.lastErr {
		return
	}
	a.lastErr = st.Err
	a.log.Debug(context.Background(), "store error", "error", st.Err, "version", st.Version)
	printlnFn("!", describeError(st.Err))
}

func (a *App) status() string {
	st := a.store.Snapshot()
	return a.renderer.Status(st)
}

// describeError turns store errors into a short hint for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "인증에 실패했어요. 액세스 토큰을 확인해 주세요."
	case errors.Is(err, client.ErrUnavailable):
		return "서버에 연결할 수 없어요. 잠시 후 다시 시도해 주세요."
	case errors.Is(err, common.ErrorValidation):
		return "입력값을 확인해 주세요: " + err.Error()
	default:
		return err.Error()
	}
}
