// Package logger provides a small structured logging interface for dash components.
// Packages log through Logger without being coupled to a specific handler; the
// default is a no-op so render paths cost nothing unless debugging is switched on.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// DebugEnvVar turns on debug logging when set to any non-empty value.
const DebugEnvVar = "DASH_DEBUG"

// Logger defines the interface for logging operations.
// Methods take a message and alternating key/value pairs, as log/slog does.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// slogLogger adapts a *slog.Logger to Logger.
type slogLogger struct {
	l *slog.Logger
}

// fromSlog wraps an existing slog logger. A nil logger yields Noop.
func fromSlog(l *slog.Logger) Logger {
	if l == nil {
		return Noop()
	}
	return &slogLogger{l: l}
}

// New creates a text logger writing to w at the given minimum level.
func New(w io.Writer, level slog.Level) Logger {
	return fromSlog(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &slogLogger{l: slog.New(slog.DiscardHandler)}
}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
	Attrs   map[string]any
}

// BufferLogger captures log messages for test assertions.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, msg string, args []any) {
	attrs := make(map[string]any, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		attrs[fmt.Sprint(args[i])] = args[i+1]
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: msg, Attrs: attrs})
}

func (l *BufferLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *BufferLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *BufferLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *BufferLogger) Error(msg string, args ...any) { l.record("error", msg, args) }

// With returns a view of the same buffer that prepends args to every message.
func (l *BufferLogger) With(args ...any) Logger {
	return &boundBuffer{parent: l, attrs: args}
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// HasMessage returns true if any message matches msg exactly.
func (l *BufferLogger) HasMessage(msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Message == msg {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

type boundBuffer struct {
	parent *BufferLogger
	attrs  []any
}

func (b *boundBuffer) withAttrs(args []any) []any {
	return append(append([]any{}, b.attrs...), args...)
}

func (b *boundBuffer) Debug(msg string, args ...any) { b.parent.record("debug", msg, b.withAttrs(args)) }
func (b *boundBuffer) Info(msg string, args ...any)  { b.parent.record("info", msg, b.withAttrs(args)) }
func (b *boundBuffer) Warn(msg string, args ...any)  { b.parent.record("warn", msg, b.withAttrs(args)) }
func (b *boundBuffer) Error(msg string, args ...any) { b.parent.record("error", msg, b.withAttrs(args)) }

func (b *boundBuffer) With(args ...any) Logger {
	return &boundBuffer{parent: b.parent, attrs: b.withAttrs(args)}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = Noop()
)

// Default returns the package-level logger. It discards everything until SetDefault is called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the package-level logger.
func SetDefault(l Logger) {
	if l == nil {
		l = Noop()
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// OrDefault returns l, or the package default when l is nil.
func OrDefault(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}
