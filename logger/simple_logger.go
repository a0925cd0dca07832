package logger

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// SimpleLogger writes records to a [log.Logger] as logfmt style lines:
//
//	INFO msg="Zone offset cached" id=+05:30 seconds=19800
//
// Records below the configured level are dropped.
type SimpleLogger struct {
	logger *log.Logger
	level  Level
}

var _ Logger = (*SimpleLogger)(nil)

// NewSimpleLogger returns a new [SimpleLogger] writing records at level or
// above to logger.
func NewSimpleLogger(logger *log.Logger, level Level) *SimpleLogger {
	return &SimpleLogger{logger: logger, level: level}
}

func (l *SimpleLogger) Trace(msg string, args ...any) { l.write(LevelTrace, msg, args) }
func (l *SimpleLogger) Debug(msg string, args ...any) { l.write(LevelDebug, msg, args) }
func (l *SimpleLogger) Info(msg string, args ...any)  { l.write(LevelInfo, msg, args) }
func (l *SimpleLogger) Warn(msg string, args ...any)  { l.write(LevelWarn, msg, args) }
func (l *SimpleLogger) Error(msg string, args ...any) { l.write(LevelError, msg, args) }

// Enabled reports whether records at the given level are written.
func (l *SimpleLogger) Enabled(level Level) bool {
	return l.level != LevelOff && level >= l.level
}

func (l *SimpleLogger) write(level Level, msg string, args []any) {
	if !l.Enabled(level) {
		return
	}
	// calldepth 3 reports the caller of the level method
	_ = l.logger.Output(3, formatRecord(level, msg, args))
}

func formatRecord(level Level, msg string, args []any) string {
	var b strings.Builder
	b.WriteString(level.String())
	b.WriteString(" msg=")
	b.WriteString(quoteValue(msg))
	for i := 0; i < len(args); i += 2 {
		b.WriteByte(' ')
		if i+1 == len(args) {
			// a dangling value has no key
			b.WriteString("!BADKEY=")
			b.WriteString(quoteValue(fmt.Sprint(args[i])))
			break
		}
		b.WriteString(fmt.Sprint(args[i]))
		b.WriteByte('=')
		b.WriteString(quoteValue(fmt.Sprint(args[i+1])))
	}
	return b.String()
}

func quoteValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
