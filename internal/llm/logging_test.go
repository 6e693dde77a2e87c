package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/microlearn/internal/store"
)

// memEvents implements store.LLMEventRepo for testing.
type memEvents struct {
	events []store.LLMRequestEventData
}

func (m *memEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	m.events = append(m.events, data)
	return nil
}

func (m *memEvents) QueryLLMEvents(_ context.Context, _ int) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func TestLoggingRecordsProviderAndModel(t *testing.T) {
	events := &memEvents{}
	inner := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(inner, "anthropic", events)

	ctx := WithPurpose(context.Background(), "explain")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(events.events))
	}
	e := events.events[0]
	if e.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", e.Provider, "anthropic")
	}
	if e.Model != "mock" {
		t.Errorf("Model = %q, want %q", e.Model, "mock")
	}
	if e.Purpose != "explain" {
		t.Errorf("Purpose = %q, want %q", e.Purpose, "explain")
	}
	if !e.Success || e.InputTokens != 12 || e.OutputTokens != 7 {
		t.Errorf("event = %+v, want success with usage recorded", e)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	events := &memEvents{}
	p := WithLogging(NewMockProvider(), "openai", events)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(events.events) != 1 {
		t.Fatalf("logged %d events, want 1", len(events.events))
	}
	e := events.events[0]
	if e.Success {
		t.Error("failed request logged as success")
	}
	if e.ErrorMessage == "" {
		t.Error("failed request should record the error message")
	}
}
