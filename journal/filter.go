package journal

import (
	"slices"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type FilterEventTypeString = string
type FilterTitleString = string

// payloadKeyTitle is the payload key every catalog notification uses for the book title.
const payloadKeyTitle = "Title"

/***** Filter *****/

// Filter describes which entries a Query should return:
//
//   - (any entry)
//   - (eventType OR eventType...)
//   - (title OR title...)
//   - ((eventType OR eventType...) AND (title OR title...))
//
// each optionally restricted to an inclusive occurredAt range.
type Filter struct {
	eventTypes    []FilterEventTypeString
	titles        []FilterTitleString
	occurredFrom  time.Time
	occurredUntil time.Time
}

func (f Filter) EventTypes() []FilterEventTypeString {
	return f.eventTypes
}

func (f Filter) Titles() []FilterTitleString {
	return f.titles
}

func (f Filter) OccurredFrom() time.Time {
	return f.occurredFrom
}

func (f Filter) OccurredUntil() time.Time {
	return f.occurredUntil
}

// MatchesAnyEntry returns true if the Filter has no criteria at all.
func (f Filter) MatchesAnyEntry() bool {
	return len(f.eventTypes) == 0 &&
		len(f.titles) == 0 &&
		f.occurredFrom.IsZero() &&
		f.occurredUntil.IsZero()
}

// Matches evaluates the Filter against a single Entry in memory.
// Titles are compared with the "Title" key of the payload.
func (f Filter) Matches(entry Entry) bool {
	if len(f.eventTypes) > 0 && !slices.Contains(f.eventTypes, entry.EventType) {
		return false
	}

	if len(f.titles) > 0 {
		title := jsoniter.Get(entry.PayloadJSON, payloadKeyTitle)
		if title.LastError() != nil || !slices.Contains(f.titles, title.ToString()) {
			return false
		}
	}

	if !f.occurredFrom.IsZero() && entry.OccurredAt.Before(f.occurredFrom) {
		return false
	}

	if !f.occurredUntil.IsZero() && entry.OccurredAt.After(f.occurredUntil) {
		return false
	}

	return true
}

/***** FilterBuilder *****/

// FilterBuilder builds a Filter to be used by Journal implementations.
type FilterBuilder struct {
	filter Filter
}

// BuildFilter starts building a new Filter.
func BuildFilter() *FilterBuilder {
	return &FilterBuilder{}
}

// MatchingAnyEntry directly creates an empty Filter.
func MatchingAnyEntry() Filter {
	return Filter{}
}

// AnyEventTypeOf adds one or multiple event types to the Filter.
//
// It sanitizes the input:
//   - removing empty event types ("")
//   - sorting the event types
//   - removing duplicate event types
func (b *FilterBuilder) AnyEventTypeOf(eventType FilterEventTypeString, eventTypes ...FilterEventTypeString) *FilterBuilder {
	b.filter.eventTypes = sanitize(append(b.filter.eventTypes, append([]string{eventType}, eventTypes...)...))
	return b
}

// AndAnyTitleOf adds one or multiple titles to the Filter, sanitized like the event types.
func (b *FilterBuilder) AndAnyTitleOf(title FilterTitleString, titles ...FilterTitleString) *FilterBuilder {
	b.filter.titles = sanitize(append(b.filter.titles, append([]string{title}, titles...)...))
	return b
}

// OccurredFrom restricts the Filter to entries that occurred at or after the given time.
func (b *FilterBuilder) OccurredFrom(from time.Time) *FilterBuilder {
	b.filter.occurredFrom = from
	return b
}

// OccurredUntil restricts the Filter to entries that occurred at or before the given time.
func (b *FilterBuilder) OccurredUntil(until time.Time) *FilterBuilder {
	b.filter.occurredUntil = until
	return b
}

// Finalize returns the Filter.
func (b *FilterBuilder) Finalize() Filter {
	return Filter{
		eventTypes:    slices.Clone(b.filter.eventTypes),
		titles:        slices.Clone(b.filter.titles),
		occurredFrom:  b.filter.occurredFrom,
		occurredUntil: b.filter.occurredUntil,
	}
}

func sanitize(values []string) []string {
	values = slices.DeleteFunc(values, func(v string) bool { return v == "" })
	slices.Sort(values)

	return slices.Compact(values)
}
