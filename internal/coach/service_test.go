package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/microlearn/internal/catalog"
	"github.com/abhisek/microlearn/internal/llm"
)

var explainTask = &catalog.Task{
	ID:          "math-001",
	Category:    "math",
	Question:    "What is 15% of 240?",
	Answer:      "36",
	Explanation: "10% of 240 is 24, 5% is 12; together 36.",
}

func TestExplain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "Percentages are fractions of 100.",
			"explanation": "15% means 15 per 100, so multiply 240 by 0.15.",
			"example": "20% of 150 is 30."
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	got, err := svc.Explain(context.Background(), explainTask)
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if got.TaskID != "math-001" {
		t.Errorf("TaskID = %q, want math-001", got.TaskID)
	}
	if got.Summary == "" || got.Explanation == "" || got.Example == "" {
		t.Errorf("explanation has empty fields: %+v", got)
	}

	// The request carried the task and the schema.
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != ExplanationSchema {
		t.Error("request did not carry the explanation schema")
	}
	if !strings.Contains(req.Messages[0].Content, explainTask.Question) {
		t.Error("user message does not contain the question")
	}
	if !strings.Contains(req.Messages[0].Content, explainTask.Explanation) {
		t.Error("user message does not contain the existing note")
	}
}

func TestExplainProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Explain(context.Background(), explainTask)

	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped *ErrProviderUnavailable, got %T: %v", err, err)
	}
}

func TestExplainMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Explain(context.Background(), explainTask); err == nil {
		t.Fatal("expected parse error for malformed response")
	}
}
