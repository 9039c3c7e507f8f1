// Package cli provides the interactive Finz coach chat client.
//
// It mounts one conversation for the current user, loads its history and
// runs a line-oriented REPL on top of the store:
//
//   - free chat, goal and spending consultations
//   - search with match navigation and per-date counts
//   - quick actions and auto-posted expense records
//   - the local profile that selects the user
//
// Plain lines are sent to the coach; commands are listed by "help". The
// REPL is started via App.Run, which blocks until the user exits.
package cli
