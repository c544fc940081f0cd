package spies

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/AntonStoeckl/bookshelf-go/shell"
)

// MetricsCollectorSpy is a ContextualMetricsCollector that captures metrics calls.
type MetricsCollectorSpy struct {
	durationRecords []DurationRecord
	counterRecords  []CounterRecord
	valueRecords    []ValueRecord
	contextualCalls int
	mu              sync.Mutex
}

// DurationRecord represents a recorded duration metric call.
type DurationRecord struct {
	Metric   string
	Duration time.Duration
	Labels   map[string]string
}

// CounterRecord represents a recorded counter increment call.
type CounterRecord struct {
	Metric string
	Labels map[string]string
}

// ValueRecord represents a recorded value metric call.
type ValueRecord struct {
	Metric string
	Value  float64
	Labels map[string]string
}

// NewMetricsCollectorSpy creates a new MetricsCollectorSpy.
func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

// RecordDuration implements shell.MetricsCollector.
func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = append(s.durationRecords, DurationRecord{Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

// IncrementCounter implements shell.MetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counterRecords = append(s.counterRecords, CounterRecord{Metric: metric, Labels: maps.Clone(labels)})
}

// RecordValue implements shell.MetricsCollector.
func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.valueRecords = append(s.valueRecords, ValueRecord{Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

// RecordDurationContext implements shell.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) RecordDurationContext(_ context.Context, metric string, duration time.Duration, labels map[string]string) {
	s.countContextualCall()
	s.RecordDuration(metric, duration, labels)
}

// IncrementCounterContext implements shell.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) IncrementCounterContext(_ context.Context, metric string, labels map[string]string) {
	s.countContextualCall()
	s.IncrementCounter(metric, labels)
}

// RecordValueContext implements shell.ContextualMetricsCollector.
func (s *MetricsCollectorSpy) RecordValueContext(_ context.Context, metric string, value float64, labels map[string]string) {
	s.countContextualCall()
	s.RecordValue(metric, value, labels)
}

// DurationRecords returns a copy of all captured duration records.
func (s *MetricsCollectorSpy) DurationRecords() []DurationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]DurationRecord(nil), s.durationRecords...)
}

// CounterRecords returns a copy of all captured counter records.
func (s *MetricsCollectorSpy) CounterRecords() []CounterRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]CounterRecord(nil), s.counterRecords...)
}

// ValueRecords returns a copy of all captured value records.
func (s *MetricsCollectorSpy) ValueRecords() []ValueRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ValueRecord(nil), s.valueRecords...)
}

// ContextualCalls returns how many calls arrived through the context-aware methods.
func (s *MetricsCollectorSpy) ContextualCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.contextualCalls
}

// HasCounterRecord checks if a counter record with the given metric name exists.
func (s *MetricsCollectorSpy) HasCounterRecord(metric string) bool {
	for _, record := range s.CounterRecords() {
		if record.Metric == metric {
			return true
		}
	}

	return false
}

// HasDurationRecord checks if a duration record with the given metric name exists.
func (s *MetricsCollectorSpy) HasDurationRecord(metric string) bool {
	for _, record := range s.DurationRecords() {
		if record.Metric == metric {
			return true
		}
	}

	return false
}

// Reset clears all captured metric records.
func (s *MetricsCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.durationRecords = s.durationRecords[:0]
	s.counterRecords = s.counterRecords[:0]
	s.valueRecords = s.valueRecords[:0]
	s.contextualCalls = 0
}

func (s *MetricsCollectorSpy) countContextualCall() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contextualCalls++
}

var _ shell.ContextualMetricsCollector = (*MetricsCollectorSpy)(nil)
