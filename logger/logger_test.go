package logger_test

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reugn/go-calendar/logger"
)

func TestSimpleLogger(t *testing.T) {
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", 0), logger.LevelInfo)

	l.Trace("trace")
	l.Debug("debug")
	assert.Empty(t, b.String())

	l.Info("offset cached", "id", "+01:00", "seconds", 3600)
	assert.Equal(t, "INFO msg=\"offset cached\" id=+01:00 seconds=3600\n", b.String())
	b.Reset()

	l.Warn("dangling", "key")
	assert.Equal(t, "WARN msg=dangling !BADKEY=key\n", b.String())
	b.Reset()

	l.Error("failed", "error", "bad value=3")
	assert.Equal(t, "ERROR msg=failed error=\"bad value=3\"\n", b.String())

	assert.False(t, l.Enabled(logger.LevelDebug))
	assert.True(t, l.Enabled(logger.LevelError))
}

func TestLoggerOff(t *testing.T) {
	var b bytes.Buffer
	l := logger.NewSimpleLogger(log.New(&b, "", 0), logger.LevelOff)

	assert.False(t, l.Enabled(logger.LevelError))
	l.Error("error")
	assert.Empty(t, b.String())
}

func TestSlogLogger(t *testing.T) {
	var b bytes.Buffer
	handler := slog.NewTextHandler(&b, &slog.HandlerOptions{
		Level:       slog.Level(logger.LevelTrace),
		ReplaceAttr: logger.ReplaceLevelAttr,
	})
	l := logger.NewSlogLogger(context.Background(), slog.New(handler))

	l.Trace("trace message", "field", "Year")
	assert.Contains(t, b.String(), "level=TRACE")
	assert.Contains(t, b.String(), "field=Year")
	assert.True(t, l.Enabled(logger.LevelTrace))

	b.Reset()
	l.With("component", "offsets").Info("cached")
	assert.Contains(t, b.String(), "level=INFO")
	assert.Contains(t, b.String(), "component=offsets")
	assert.Contains(t, b.String(), "msg=cached")

	require.Panics(t, func() { logger.NewSlogLogger(context.Background(), nil) })
}

func TestDefaultLoggerRace(t *testing.T) {
	var b bytes.Buffer
	stdLogger := log.New(&b, "", log.LstdFlags)

	logger1 := logger.NewSimpleLogger(stdLogger, logger.LevelOff)
	logger2 := logger.NewSimpleLogger(stdLogger, logger.LevelTrace)
	logger3 := logger.NewSimpleLogger(stdLogger, logger.LevelDebug)

	previous := logger.Default()
	defer logger.SetDefault(previous)

	var wg sync.WaitGroup
	for _, l := range []*logger.SimpleLogger{logger1, logger2, logger3} {
		wg.Add(1)
		go func(l *logger.SimpleLogger) {
			defer wg.Done()
			logger.SetDefault(l)
		}(l)
	}
	wg.Wait()

	logger.SetDefault(logger2)
	assert.Same(t, logger2, logger.Default())

	logger.SetDefault(nil)
	assert.Equal(t, logger.NoOpLogger{}, logger.Default())
}

func TestCustomLogger(t *testing.T) {
	previous := logger.Default()
	defer logger.SetDefault(previous)

	l := &countingLogger{}
	logger.SetDefault(l)
	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")
	assert.Equal(t, 5, l.count)
	assert.True(t, logger.Enabled(logger.LevelTrace))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected logger.Level
	}{
		{"trace", logger.LevelTrace},
		{"DEBUG", logger.LevelDebug},
		{" Info ", logger.LevelInfo},
		{"warn", logger.LevelWarn},
		{"error", logger.LevelError},
		{"off", logger.LevelOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := logger.ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := logger.ParseLevel("verbose")
	assert.Error(t, err)
	assert.Equal(t, "LEVEL(3)", logger.Level(3).String())
}

type countingLogger struct {
	count int
}

var _ logger.Logger = (*countingLogger)(nil)

func (l *countingLogger) Trace(_ string, _ ...any) { l.count++ }
func (l *countingLogger) Debug(_ string, _ ...any) { l.count++ }
func (l *countingLogger) Info(_ string, _ ...any)  { l.count++ }
func (l *countingLogger) Warn(_ string, _ ...any)  { l.count++ }
func (l *countingLogger) Error(_ string, _ ...any) { l.count++ }
func (l *countingLogger) Enabled(_ logger.Level) bool {
	return true
}
