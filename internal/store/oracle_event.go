package store

import (
	"context"
	"fmt"

	"github.com/kelsic/dialogia/ent"
	"github.com/kelsic/dialogia/ent/oraclerequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.OracleRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetRunID(data.RunID).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save oracle request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]OracleEvent, error) {
	q := r.client.OracleRequestEvent.Query().
		Order(ent.Desc(oraclerequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(oraclerequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(oraclerequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(oraclerequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(oraclerequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query oracle events: %w", err)
	}

	events := make([]OracleEvent, 0, len(rows))
	for _, e := range rows {
		events = append(events, oracleEventFromEnt(e))
	}
	return events, nil
}

func (r *eventRepo) GetOracleEvent(ctx context.Context, id int) (*OracleEvent, error) {
	e, err := r.client.OracleRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get oracle event: %w", err)
	}
	ev := oracleEventFromEnt(e)
	return &ev, nil
}

func (r *eventRepo) OracleUsageByPurpose(ctx context.Context) ([]OracleUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	err := r.client.OracleRequestEvent.Query().
		GroupBy(oraclerequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(oraclerequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(oraclerequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(oraclerequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	usage := make([]OracleUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, OracleUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		})
	}
	return usage, nil
}

func (r *eventRepo) OracleUsageByModel(ctx context.Context) ([]OracleUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}

	err := r.client.OracleRequestEvent.Query().
		GroupBy(oraclerequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(oraclerequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(oraclerequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	usage := make([]OracleUsage, 0, len(rows))
	for _, row := range rows {
		usage = append(usage, OracleUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return usage, nil
}

func oracleEventFromEnt(e *ent.OracleRequestEvent) OracleEvent {
	return OracleEvent{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		RunID:        e.RunID,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		LatencyMs:    e.LatencyMs,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	}
}
