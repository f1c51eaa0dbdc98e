// Package logging is the logger every client package takes as a dependency.
// Production code gets the slog-backed SlogLogger; tests pass Nop.
package logging

import "context"

// Logger methods take ctx first and alternating key/value args:
//
//	log.Info(ctx, "fetch finished", "screen", "mailbox", "request_id", id)
type Logger interface {
	// Debug is for per-request detail such as discarded stale responses.
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn marks recoverable failures: a best-effort logout, an unreadable token.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	// With binds args to every later record, e.g. the screen name.
	With(args ...any) Logger
}

type nopLogger struct{}

// Nop discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }
