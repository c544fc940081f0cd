package spies

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/bookshelf-go/shell"
)

// SpanSpy is the SpanContext handed out by TracingCollectorSpy.
type SpanSpy struct {
	status     string
	attributes map[string]string
	mu         sync.Mutex
}

// SetStatus implements shell.SpanContext.
func (c *SpanSpy) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

// AddAttribute implements shell.SpanContext.
func (c *SpanSpy) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attributes == nil {
		c.attributes = make(map[string]string)
	}
	c.attributes[key] = value
}

// SpanRecord represents a recorded span.
type SpanRecord struct {
	Name            string
	StartAttributes map[string]string
	Status          string
	EndAttributes   map[string]string
	Finished        bool
	span            *SpanSpy
}

// TracingCollectorSpy is a TracingCollector that captures started and finished spans.
type TracingCollectorSpy struct {
	spanRecords []SpanRecord
	mu          sync.Mutex
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements shell.TracingCollector.
func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, shell.SpanContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	span := &SpanSpy{}
	s.spanRecords = append(s.spanRecords, SpanRecord{
		Name:            name,
		StartAttributes: maps.Clone(attrs),
		span:            span,
	})

	return ctx, span
}

// FinishSpan implements shell.TracingCollector.
func (s *TracingCollectorSpy) FinishSpan(spanCtx shell.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpanSpy)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.spanRecords {
		if s.spanRecords[i].span == span {
			s.spanRecords[i].Status = status
			s.spanRecords[i].EndAttributes = maps.Clone(attrs)
			s.spanRecords[i].Finished = true
			break
		}
	}
}

// SpanRecords returns a copy of all captured spans in start order.
func (s *TracingCollectorSpy) SpanRecords() []SpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpanRecord(nil), s.spanRecords...)
}

// Reset clears all captured spans.
func (s *TracingCollectorSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spanRecords = s.spanRecords[:0]
}

var _ shell.TracingCollector = (*TracingCollectorSpy)(nil)
