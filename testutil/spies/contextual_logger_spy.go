package spies

import (
	"context"
	"sync"

	"github.com/AntonStoeckl/bookshelf-go/shell"
)

// ContextualLoggerSpy is a ContextualLogger that captures contextual logging calls.
type ContextualLoggerSpy struct {
	records []ContextualLogRecord
	mu      sync.Mutex
}

// ContextualLogRecord represents a recorded contextual log call.
type ContextualLogRecord struct {
	Level   string
	Message string
	Args    []any
	Context context.Context
}

// NewContextualLoggerSpy creates a new ContextualLoggerSpy.
func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

// DebugContext implements shell.ContextualLogger.
func (s *ContextualLoggerSpy) DebugContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "debug", msg, args)
}

// InfoContext implements shell.ContextualLogger.
func (s *ContextualLoggerSpy) InfoContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "info", msg, args)
}

// WarnContext implements shell.ContextualLogger.
func (s *ContextualLoggerSpy) WarnContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "warn", msg, args)
}

// ErrorContext implements shell.ContextualLogger.
func (s *ContextualLoggerSpy) ErrorContext(ctx context.Context, msg string, args ...any) {
	s.record(ctx, "error", msg, args)
}

// Records returns a copy of all records in call order.
func (s *ContextualLoggerSpy) Records() []ContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ContextualLogRecord(nil), s.records...)
}

// RecordsAt returns a copy of all records with the given level ("debug", "info", "warn", "error").
func (s *ContextualLoggerSpy) RecordsAt(level string) []ContextualLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]ContextualLogRecord, 0)
	for _, record := range s.records {
		if record.Level == level {
			records = append(records, record)
		}
	}

	return records
}

// HasLog checks if a record with the given level and message exists.
func (s *ContextualLoggerSpy) HasLog(level string, message string) bool {
	for _, record := range s.RecordsAt(level) {
		if record.Message == message {
			return true
		}
	}

	return false
}

// Reset clears all recorded log calls.
func (s *ContextualLoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
}

func (s *ContextualLoggerSpy) record(ctx context.Context, level string, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, ContextualLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
		Context: ctx,
	})
}

var _ shell.ContextualLogger = (*ContextualLoggerSpy)(nil)
