package oteladapters

import (
	"go.opentelemetry.io/otel/attribute"
)

// attrsFrom converts a label map to OpenTelemetry attributes.
func attrsFrom(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}
