package diagram

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false, so callers skip building records entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the package. By default, nothing is
// logged. Pass nil to restore the default.
//
// All records are logged at [slog.LevelDebug] and describe work that is
// useful when tuning a construction pipeline: deep copies made by
// copy-on-write, combining and flattening.
//
// Example:
//
//	diagram.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

func debugEnabled() bool {
	return Logger().Enabled(context.Background(), slog.LevelDebug)
}

func logCopy(d *Diagram) {
	if !debugEnabled() {
		return
	}
	Logger().Debug("diagram: copy on write", "kind", d.kind, "nodes", d.size())
}
