package store

import (
	"context"
	"fmt"
	"sort"
)

// PurposeUsage aggregates model requests sharing one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates token consumption per model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SourceUsage aggregates resolutions per answering stage.
type SourceUsage struct {
	Source       string
	Total        int
	Succeeded    int
	AvgLatencyMs int64
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byPurpose := make(map[string]*PurposeUsage)
	latency := make(map[string]int64)
	for _, row := range rows {
		u := byPurpose[row.Purpose]
		if u == nil {
			u = &PurposeUsage{Purpose: row.Purpose}
			byPurpose[row.Purpose] = u
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
		latency[row.Purpose] += row.LatencyMs
	}

	out := make([]PurposeUsage, 0, len(byPurpose))
	for purpose, u := range byPurpose {
		u.AvgLatencyMs = latency[purpose] / int64(u.Calls)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byModel := make(map[string]*ModelUsage)
	for _, row := range rows {
		u := byModel[row.Model]
		if u == nil {
			u = &ModelUsage{Model: row.Model}
			byModel[row.Model] = u
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
	}

	out := make([]ModelUsage, 0, len(byModel))
	for _, u := range byModel {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

func (r *eventRepo) ResolutionsBySource(ctx context.Context) ([]SourceUsage, error) {
	rows, err := r.client.ResolutionEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query resolution events: %w", err)
	}

	bySource := make(map[string]*SourceUsage)
	latency := make(map[string]int64)
	for _, row := range rows {
		u := bySource[row.Source]
		if u == nil {
			u = &SourceUsage{Source: row.Source}
			bySource[row.Source] = u
		}
		u.Total++
		if row.Success {
			u.Succeeded++
		}
		latency[row.Source] += row.LatencyMs
	}

	out := make([]SourceUsage, 0, len(bySource))
	for source, u := range bySource {
		u.AvgLatencyMs = latency[source] / int64(u.Total)
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out, nil
}
