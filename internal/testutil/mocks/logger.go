package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/piforge/claudeup/internal/ports"
)

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   ports.Level
	Message string
	Fields  []ports.Field
}

// Logger captures log calls for assertions.
type Logger struct {
	mu      sync.Mutex
	level   ports.Level
	entries []LogEntry
}

// NewLogger creates a capturing logger at debug level.
func NewLogger() *Logger {
	return &Logger{level: ports.LevelDebug}
}

func (l *Logger) log(level ports.Level, msg string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (l *Logger) Debug(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelDebug, msg, fields...)
}

func (l *Logger) Info(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelInfo, msg, fields...)
}

func (l *Logger) Warn(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelWarn, msg, fields...)
}

func (l *Logger) Error(_ context.Context, msg string, fields ...ports.Field) {
	l.log(ports.LevelError, msg, fields...)
}

// With returns the same logger; captured entries stay in one place.
func (l *Logger) With(...ports.Field) ports.Logger { return l }

func (l *Logger) Level() ports.Level { return l.level }

func (l *Logger) SetLevel(level ports.Level) { l.level = level }

// Entries returns a copy of all captured entries.
func (l *Logger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogEntry(nil), l.entries...)
}

// HasMessage reports whether any entry at level contains substr.
func (l *Logger) HasMessage(level ports.Level, substr string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

var _ ports.Logger = (*Logger)(nil)
