// Package coach generates deeper, AI-written explanations for catalog
// tasks. It is an optional feature: the rest of the program works without
// a configured LLM provider.
package coach

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/microlearn/internal/catalog"
	"github.com/abhisek/microlearn/internal/llm"
)

// Explanation is an AI-generated walkthrough of one task.
type Explanation struct {
	TaskID string

	// Summary restates the key idea in one or two sentences.
	Summary string

	// Explanation is the full walkthrough.
	Explanation string

	// Example is a related example applying the same idea.
	Example string
}

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.4,
	}
}

// Service generates task explanations through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type explanationOutput struct {
	Summary     string `json:"summary"`
	Explanation string `json:"explanation"`
	Example     string `json:"example"`
}

// Explain asks the provider for a schema-validated explanation of the task.
func (s *Service) Explain(ctx context.Context, task *catalog.Task) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(task)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		TaskID:      task.ID,
		Summary:     out.Summary,
		Explanation: out.Explanation,
		Example:     out.Example,
	}, nil
}
