package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read model for a stored model request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// ResolutionEventData captures the data for a single pipeline resolution.
type ResolutionEventData struct {
	RequestID string
	Question  string
	Source    string
	Category  string
	Language  string
	Success   bool
	LatencyMs int64
}

// ResolutionEvent is the read model for a stored resolution event.
type ResolutionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ResolutionEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns model request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one model request event by ID, or nil.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// AppendResolution records a pipeline resolution event.
	AppendResolution(ctx context.Context, data ResolutionEventData) error

	// QueryResolutions returns resolution events, newest first.
	QueryResolutions(ctx context.Context, opts QueryOpts) ([]ResolutionEvent, error)

	// LLMUsageByPurpose aggregates model calls per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token consumption per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// ResolutionsBySource aggregates resolutions per answering stage.
	ResolutionsBySource(ctx context.Context) ([]SourceUsage, error)
}
