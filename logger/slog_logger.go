package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// SlogLogger adapts a [slog.Logger] to the [Logger] interface. Trace records
// are emitted at slog level Debug-4; install [ReplaceLevelAttr] in the
// handler options to have them rendered as TRACE.
type SlogLogger struct {
	ctx    context.Context
	logger *slog.Logger
}

var _ Logger = (*SlogLogger)(nil)

// NewSlogLogger returns a new [SlogLogger] handling records in ctx.
// It panics if logger is nil.
func NewSlogLogger(ctx context.Context, logger *slog.Logger) *SlogLogger {
	if logger == nil {
		panic("logger: nil slog.Logger")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &SlogLogger{ctx: ctx, logger: logger}
}

// With returns a SlogLogger that adds args to every record.
func (l *SlogLogger) With(args ...any) *SlogLogger {
	return &SlogLogger{ctx: l.ctx, logger: l.logger.With(args...)}
}

// ReplaceLevelAttr is a [slog.HandlerOptions] ReplaceAttr function naming
// the trace level.
func ReplaceLevelAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && Level(level) == LevelTrace {
		a.Value = slog.StringValue(LevelTrace.String())
	}
	return a
}

func (l *SlogLogger) Trace(msg string, args ...any) { l.handle(LevelTrace, msg, args) }
func (l *SlogLogger) Debug(msg string, args ...any) { l.handle(LevelDebug, msg, args) }
func (l *SlogLogger) Info(msg string, args ...any)  { l.handle(LevelInfo, msg, args) }
func (l *SlogLogger) Warn(msg string, args ...any)  { l.handle(LevelWarn, msg, args) }
func (l *SlogLogger) Error(msg string, args ...any) { l.handle(LevelError, msg, args) }

// Enabled reports whether the handler accepts records at the given level.
// Level values map one to one onto slog levels.
func (l *SlogLogger) Enabled(level Level) bool {
	return l.logger.Enabled(l.ctx, slog.Level(level))
}

func (l *SlogLogger) handle(level Level, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}
	// skip runtime.Callers, handle and the level method
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	record.Add(args...)
	_ = l.logger.Handler().Handle(l.ctx, record)
}
