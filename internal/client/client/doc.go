// Package client contains the transport side of the Finz coach client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the CoachClient interface):
//     History, SendMessage, StartGoalConsult and StartExpenseConsult.
//  2. A concrete HTTP implementation (see HTTPClient) that injects the static
//     access token header, applies a per-request timeout, logs every request
//     and response at debug level, and maps failures to sentinel errors.
//  3. Prometheus collectors for request outcomes and latency (see Metrics).
//  4. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     profile store: an SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Transport failures, timeouts and 5xx responses wrap ErrUnavailable; 401 and
// 403 map to ErrUnauthorized; any other non-2xx status is an *APIError.
// Callers match with errors.Is / errors.As.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation in addition to the client timeout.
package client
