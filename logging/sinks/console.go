// Package sinks provides the in-process logging.Sink implementations used
// when no external log-shipping backend is configured: a line-oriented
// console sink, a batched JSONL file sink, and a ring-buffer memory sink for
// tests. Structured production logging is handled by maptool/logging/zapsink.
package sinks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"maptool/logging"
)

// ConsoleSink writes one line per event to the provided writer.
type ConsoleSink struct {
	logger *log.Logger
}

// NewConsoleSink constructs a ConsoleSink writing to w.
func NewConsoleSink(w io.Writer, cfg logging.ConsoleConfig) *ConsoleSink {
	return &ConsoleSink{logger: log.New(w, cfg.Prefix, log.LstdFlags)}
}

// Write implements logging.Sink.
func (s *ConsoleSink) Write(event logging.Event) error {
	if s.logger == nil {
		return nil
	}
	s.logger.Printf("[%s] severity=%s%s", event.Type, formatSeverity(event.Severity), formatPayload(event.Payload))
	return nil
}

// Close implements logging.Sink.
func (s *ConsoleSink) Close(context.Context) error {
	return nil
}

func formatSeverity(sev logging.Severity) string {
	switch sev {
	case logging.SeverityDebug:
		return "debug"
	case logging.SeverityInfo:
		return "info"
	case logging.SeverityWarn:
		return "warn"
	case logging.SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

func formatPayload(payload any) string {
	if payload == nil {
		return ""
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf(" payload=%v", payload)
	}
	return fmt.Sprintf(" payload=%s", strings.TrimSpace(string(data)))
}
