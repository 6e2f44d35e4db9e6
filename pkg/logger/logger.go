package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide logger. It is usable before Setup is called.
var Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// Setup initializes the global logger based on the environment.
// Production gets JSON lines, everything else human-readable text.
func Setup(env, level string) {
	SetupWriter(os.Stderr, env, level)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(w io.Writer, env, level string) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// ParseLevel maps debug, info, warn and error to slog levels. Unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Info logs an info message
func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}

// CalcLogger adapts a slog.Logger to the printf-style logger the calculation
// engine expects.
type CalcLogger struct {
	l *slog.Logger
}

// Calc returns a CalcLogger writing to the global logger with a component attribute.
func Calc() *CalcLogger {
	return &CalcLogger{l: Log.With(slog.String("component", "calculation"))}
}

// NewCalcLogger wraps l.
func NewCalcLogger(l *slog.Logger) *CalcLogger {
	return &CalcLogger{l: l}
}

func (c *CalcLogger) Debugf(format string, args ...any) { c.l.Debug(fmt.Sprintf(format, args...)) }
func (c *CalcLogger) Infof(format string, args ...any)  { c.l.Info(fmt.Sprintf(format, args...)) }
func (c *CalcLogger) Warnf(format string, args ...any)  { c.l.Warn(fmt.Sprintf(format, args...)) }
func (c *CalcLogger) Errorf(format string, args ...any) { c.l.Error(fmt.Sprintf(format, args...)) }
