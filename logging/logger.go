package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"runtime"
	"time"
)

// LogLevel represents different logging levels.
// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger defines the minimal logging interface for invokectx.
// This allows users to provide their own logger implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// InvokeLogger wraps slog.Logger adding contextual cloning helpers and
// invocation-specific convenience methods. It is cheap to copy via With* methods.
type InvokeLogger struct {
	logger       *slog.Logger
	level        LogLevel
	context      map[string]any
	component    string
	invocationID string
}

// LoggerConfig configures construction of an InvokeLogger.
type LoggerConfig struct {
	Level        LogLevel
	Format       string // json or text
	Output       io.Writer
	AddSource    bool
	Component    string
	InvocationID string
	CustomAttrs  map[string]any
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout, AddSource: true, CustomAttrs: map[string]any{}}
}

// NewLogger builds an InvokeLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *InvokeLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	l := &InvokeLogger{logger: slog.New(handler), level: cfg.Level, context: map[string]any{}, component: cfg.Component, invocationID: cfg.InvocationID}
	maps.Copy(l.context, cfg.CustomAttrs)
	return l
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *InvokeLogger) clone() *InvokeLogger {
	nl := *l
	nl.context = maps.Clone(l.context)
	if nl.context == nil {
		nl.context = map[string]any{}
	}
	return &nl
}

// WithContext adds a key/value attribute that will be attached to every log entry.
func (l *InvokeLogger) WithContext(key string, value any) *InvokeLogger {
	nl := l.clone()
	nl.context[key] = value
	return nl
}

// WithComponent sets the logical component (realm, runtime, example, etc.).
func (l *InvokeLogger) WithComponent(c string) *InvokeLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithInvocation attaches an invocation identifier.
func (l *InvokeLogger) WithInvocation(id string) *InvokeLogger {
	nl := l.clone()
	nl.invocationID = id
	return nl
}

func (l *InvokeLogger) buildAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(l.context)+3)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.invocationID != "" {
		attrs = append(attrs, slog.String("invocation_id", l.invocationID))
	}
	for k, v := range l.context {
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}

func (l *InvokeLogger) log(level slog.Level, allowed bool, msg string, args ...any) {
	if !allowed {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.AddAttrs(l.buildAttrs()...)
	r.Add(args...)
	_ = l.logger.Handler().Handle(context.Background(), r)
}

// Debug logs at debug level. args are slog-style key/value pairs.
func (l *InvokeLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *InvokeLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *InvokeLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *InvokeLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// ErrorWithStack logs an error plus a runtime stack snapshot.
func (l *InvokeLogger) ErrorWithStack(err error, msg string, args ...any) {
	if l.level > LogLevelError {
		return
	}
	stack := make([]byte, 4096)
	n := runtime.Stack(stack, false)
	args = append(args, "error", err.Error(), "error_type", fmt.Sprintf("%T", err), "stack_trace", string(stack[:n]))
	l.log(slog.LevelError, true, msg, args...)
}

// LogRun records the outcome of a scoped invocation run. Successful runs log
// at debug level, failed runs at warn level.
func (l *InvokeLogger) LogRun(invocationID, event string, dur time.Duration, err error) {
	level, allowed, msg := slog.LevelDebug, l.level <= LogLevelDebug, "Invocation run completed"
	if err != nil {
		level, allowed, msg = slog.LevelWarn, l.level <= LogLevelWarn, "Invocation run failed"
	}
	if !allowed {
		return
	}
	args := []any{"event", event, "duration", dur, "success", err == nil}
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.WithInvocation(invocationID).log(level, true, msg, args...)
}

// LogColdStart records the materialization of a cold-start tuple.
func (l *InvokeLogger) LogColdStart(invocationID, event string) {
	if l.level > LogLevelInfo {
		return
	}
	l.WithInvocation(invocationID).log(slog.LevelInfo, true, "Cold-start invocation materialized", "event", event)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// NewSlogLogger creates a new InvokeLogger with the specified configuration.
func NewSlogLogger(level LogLevel, format string, addSource bool) *InvokeLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}

// RunLogger is implemented by loggers with dedicated run and cold-start
// records, such as InvokeLogger.
type RunLogger interface {
	LogRun(invocationID, event string, dur time.Duration, err error)
	LogColdStart(invocationID, event string)
}

// StackLogger is implemented by loggers that can attach a stack trace.
type StackLogger interface {
	ErrorWithStack(err error, msg string, args ...any)
}

// LogRun records a run through l, using l's RunLogger implementation when it
// has one.
func LogRun(l Logger, invocationID, event string, dur time.Duration, err error) {
	if rl, ok := l.(RunLogger); ok {
		rl.LogRun(invocationID, event, dur, err)
		return
	}
	args := []any{"invocation_id", invocationID, "event", event, "duration", dur, "success", err == nil}
	if err != nil {
		l.Warn("Invocation run failed", append(args, "error", err.Error())...)
		return
	}
	l.Debug("Invocation run completed", args...)
}

// LogColdStart records a cold-start materialization through l.
func LogColdStart(l Logger, invocationID, event string) {
	if rl, ok := l.(RunLogger); ok {
		rl.LogColdStart(invocationID, event)
		return
	}
	l.Info("Cold-start invocation materialized", "invocation_id", invocationID, "event", event)
}

// LogError records err through l, with a stack trace when l is a StackLogger.
func LogError(l Logger, err error, msg string, args ...any) {
	if sl, ok := l.(StackLogger); ok {
		sl.ErrorWithStack(err, msg, args...)
		return
	}
	l.Error(msg, append(args, "error", err.Error())...)
}
