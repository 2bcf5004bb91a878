package store

import (
	"context"
	"fmt"

	"github.com/askvidya/vidya/ent"
	"github.com/askvidya/vidya/ent/resolutionevent"
)

func (r *eventRepo) AppendResolution(ctx context.Context, data ResolutionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResolutionEvent.Create().
		SetSequence(seqNum).
		SetRequestID(data.RequestID).
		SetQuestion(data.Question).
		SetSource(data.Source).
		SetCategory(data.Category).
		SetLanguage(data.Language).
		SetSuccess(data.Success).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save resolution event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryResolutions(ctx context.Context, opts QueryOpts) ([]ResolutionEvent, error) {
	q := r.client.ResolutionEvent.Query().
		Order(ent.Desc(resolutionevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(resolutionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(resolutionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(resolutionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(resolutionevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query resolution events: %w", err)
	}

	out := make([]ResolutionEvent, len(rows))
	for i, row := range rows {
		out[i] = ResolutionEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ResolutionEventData: ResolutionEventData{
				RequestID: row.RequestID,
				Question:  row.Question,
				Source:    row.Source,
				Category:  row.Category,
				Language:  row.Language,
				Success:   row.Success,
				LatencyMs: row.LatencyMs,
			},
		}
	}
	return out, nil
}
