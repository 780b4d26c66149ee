package surf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by surf and its sub-packages.
// By default surf produces no log output. Pass nil to restore silence.
//
// Log levels used by surf:
//   - [slog.LevelDebug]: blit dispatch for surfaces flagged FlagTrace,
//     LowerBlit registration, ignored frees of static surfaces
//   - [slog.LevelInfo]: not used by the library; available to commands
//
// Example:
//
//	surf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
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

// traced reports whether either surface asked for operation tracing and
// the logger would emit it.
func traced(surfaces ...*Surface) bool {
	for _, s := range surfaces {
		if s != nil && s.Flags&FlagTrace != 0 {
			return Logger().Enabled(context.Background(), slog.LevelDebug)
		}
	}
	return false
}
