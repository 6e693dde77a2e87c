package store

import (
	"context"
	"time"
)

// AttemptData captures one answer attempt for the append-only log.
type AttemptData struct {
	TaskID   string
	Category string
	Given    string
	Correct  bool
}

// AttemptStats aggregates the attempt log.
type AttemptStats struct {
	Total   int
	Correct int
}

// Accuracy returns the fraction of correct attempts, or 0 when no
// attempts were made.
func (s AttemptStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// AttemptRepo provides append access to the answer-attempt log.
type AttemptRepo interface {
	// Append records an answer attempt.
	Append(ctx context.Context, data AttemptData) error

	// Stats aggregates all recorded attempts.
	Stats(ctx context.Context) (AttemptStats, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMEventRepo provides access to the LLM request log.
type LLMEventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	// limit <= 0 means no limit.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMRequestEventRecord, error)
}
