// Package logging provides the telemetry vocabulary and fan-out router used
// by the map builder and query surface to report what they are doing without
// forcing a logging backend on the host. It is a direct adaptation of the
// teacher's event/router/sink design, renamed from game-combat telemetry to
// map-construction and pathfinding telemetry.
package logging

import (
	"context"
	"time"
)

// EventType is a namespaced identifier for engine telemetry.
type EventType string

// Severity expresses the importance of a telemetry event.
type Severity int

const (
	// SeverityDebug is verbose per-pass diagnostic information.
	SeverityDebug Severity = iota
	// SeverityInfo is routine operational telemetry (pass completed, path found).
	SeverityInfo
	// SeverityWarn indicates a recoverable anomaly (e.g. a clipped vision source).
	SeverityWarn
	// SeverityError indicates a failure likely needing attention.
	SeverityError
)

// ParseSeverity converts a config string ("debug", "info", "warn", "error")
// into a Severity, defaulting to SeverityInfo on an unrecognized value.
func ParseSeverity(level string) Severity {
	switch level {
	case "debug":
		return SeverityDebug
	case "warn":
		return SeverityWarn
	case "error":
		return SeverityError
	default:
		return SeverityInfo
	}
}

// Category groups events by subsystem for filtering (e.g. "construction", "pathfind", "vision").
type Category string

// Event describes a semantic occurrence within the analysis or query pipeline.
type Event struct {
	Type     EventType
	Time     time.Time
	Severity Severity
	Category Category
	Payload  any
	Extra    map[string]any
}

// Publisher emits telemetry events without blocking the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher is a Publisher that drops all events; the default for callers
// that don't care about telemetry.
type NopPublisher struct{}

// Publish implements Publisher.
func (NopPublisher) Publish(context.Context, Event) {}

// WithFields attaches static metadata to every event emitted by the Publisher.
func WithFields(base Publisher, fields map[string]any) Publisher {
	if base == nil {
		return NopPublisher{}
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return &fieldsPublisher{base: base, fields: copied}
}

type fieldsPublisher struct {
	base   Publisher
	fields map[string]any
}

func (p *fieldsPublisher) Publish(ctx context.Context, event Event) {
	if len(p.fields) > 0 {
		if event.Extra == nil {
			event.Extra = make(map[string]any, len(p.fields))
		}
		for k, v := range p.fields {
			if _, exists := event.Extra[k]; !exists {
				event.Extra[k] = v
			}
		}
	}
	p.base.Publish(ctx, event)
}
