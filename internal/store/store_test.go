package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		require.NoError(t, err, "PRAGMA %s", tt.pragma)
		require.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "answer",
		InputTokens: 10, OutputTokens: 20, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "math-answer",
		Success: false, ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	require.Equal(t, "math-answer", events[0].Purpose)
	require.Equal(t, "answer", events[1].Purpose)
	require.Greater(t, events[0].Sequence, events[1].Sequence)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 10, got.InputTokens)

	missing, err := repo.GetLLMEvent(ctx, 99999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestAppendAndQueryResolutions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendResolution(ctx, ResolutionEventData{
		RequestID: "r1", Question: "2x - 4 = 10", Source: "solver",
		Category: "algebra", Success: true,
	}))
	require.NoError(t, repo.AppendResolution(ctx, ResolutionEventData{
		RequestID: "r2", Question: "what is gravity", Source: "ai",
		Category: "unknown", Language: "en", Success: true,
	}))

	events, err := repo.QueryResolutions(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "r2", events[0].RequestID)
	require.Equal(t, "ai", events[0].Source)
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "answer", Success: true,
	}))
	require.NoError(t, repo.AppendResolution(ctx, ResolutionEventData{
		RequestID: "r1", Question: "q", Source: "ai", Success: true,
	}))

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	resEvents, err := repo.QueryResolutions(ctx, QueryOpts{})
	require.NoError(t, err)

	require.Greater(t, resEvents[0].Sequence, llmEvents[0].Sequence,
		"later event gets a later sequence regardless of type")
}

func TestUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "answer",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "answer",
		InputTokens: 80, OutputTokens: 40, LatencyMs: 400, Success: true,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "math-answer",
		InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: false,
	}))

	purposes, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, purposes, 2)
	// Sorted by purpose name.
	require.Equal(t, "answer", purposes[0].Purpose)
	require.Equal(t, 2, purposes[0].Calls)
	require.Equal(t, 180, purposes[0].InputTokens)
	require.Equal(t, 90, purposes[0].OutputTokens)
	require.Equal(t, int64(300), purposes[0].AvgLatencyMs)

	models, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, models, 1)
	require.Equal(t, 3, models[0].Calls)
	require.Equal(t, 190, models[0].InputTokens)
}

func TestResolutionsBySource(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendResolution(ctx, ResolutionEventData{
		RequestID: "r1", Question: "a", Source: "solver", Success: true, LatencyMs: 10,
	}))
	require.NoError(t, repo.AppendResolution(ctx, ResolutionEventData{
		RequestID: "r2", Question: "b", Source: "ai", Success: true, LatencyMs: 900,
	}))
	require.NoError(t, repo.AppendResolution(ctx, ResolutionEventData{
		RequestID: "r3", Question: "c", Source: "ai", Success: false, LatencyMs: 100,
	}))

	sources, err := repo.ResolutionsBySource(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	require.Equal(t, "ai", sources[0].Source)
	require.Equal(t, 2, sources[0].Total)
	require.Equal(t, 1, sources[0].Succeeded)
	require.Equal(t, int64(500), sources[0].AvgLatencyMs)
	require.Equal(t, "solver", sources[1].Source)
}
