// Package logging is the structured logger shared by the coach client.
//
// Every layer logs through Logger rather than a concrete handler, so the
// store and API client can be tested with NewNop and the binary can pick a
// text or JSON slog handler at startup. Fields are flat key-value pairs;
// the ones used across packages are:
//
//	component   cli, coach_store, api
//	user_id     the mounted conversation
//	op          API operation (history, send_message, goal_consult, expense_consult)
//	request_id  per-request id, also on the matching response line
//	seq, kind   history fetch sequence and load/sync kind
//
// Request and response bodies are logged at debug level only.
package logging

import "context"

// Logger is a context-aware, structured logger. args are key-value pairs:
//
//	log.Info(ctx, "history loaded", "user_id", userID, "records", n)
type Logger interface {
	// Debug carries wire traffic and store transitions.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for recoverable oddities: stale or malformed server data.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes args.
	With(args ...any) Logger
}
