package logging_test

import (
	"context"
	"testing"
	"time"

	"maptool/logging"
	"maptool/logging/sinks"
)

func TestRouterForwardsEventsAboveMinSeverity(t *testing.T) {
	mem := sinks.NewMemorySink(0)
	cfg := logging.DefaultConfig()
	cfg.MinSeverity = logging.SeverityInfo

	router, err := logging.NewRouter(cfg, logging.SystemClock{}, nil, map[string]logging.Sink{"console": mem})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	defer router.Close(context.Background())

	router.Publish(context.Background(), logging.Event{Type: "test.debug", Severity: logging.SeverityDebug})
	router.Publish(context.Background(), logging.Event{Type: "test.info", Severity: logging.SeverityInfo})

	deadline := time.Now().Add(time.Second)
	for len(mem.Events()) < 1 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	events := mem.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1 (debug event below MinSeverity should be dropped)", len(events))
	}
	if events[0].Type != "test.info" {
		t.Fatalf("got event type %q, want test.info", events[0].Type)
	}
}

func TestNopPublisherDropsEverything(t *testing.T) {
	var pub logging.Publisher = logging.NopPublisher{}
	pub.Publish(context.Background(), logging.Event{Type: "ignored"})
}

func TestWithFieldsAttachesStaticMetadata(t *testing.T) {
	mem := sinks.NewMemorySink(0)
	cfg := logging.DefaultConfig()

	router, err := logging.NewRouter(cfg, logging.SystemClock{}, nil, map[string]logging.Sink{"console": mem})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	defer router.Close(context.Background())

	pub := logging.WithFields(router, map[string]any{"build": "test"})
	pub.Publish(context.Background(), logging.Event{Type: "test.fields", Severity: logging.SeverityInfo})

	deadline := time.Now().Add(time.Second)
	for len(mem.Events()) < 1 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	events := mem.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if got := events[0].Extra["build"]; got != "test" {
		t.Fatalf("Extra[build] = %v, want test", got)
	}
}
