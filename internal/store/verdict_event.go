package store

import (
	"context"
	"fmt"

	"github.com/kelsic/dialogia/ent"
	entschema "github.com/kelsic/dialogia/ent/schema"
	"github.com/kelsic/dialogia/ent/verdictevent"
)

func (r *eventRepo) AppendVerdict(ctx context.Context, data VerdictEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	var dims []entschema.DimensionScore
	for _, d := range data.Dimensions {
		dims = append(dims, entschema.DimensionScore{
			Name:          d.Name,
			Score:         d.Score,
			NotApplicable: d.NotApplicable,
			Rationale:     d.Rationale,
		})
	}

	builder := r.client.VerdictEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetAccept(data.Accept).
		SetHardStop(data.HardStop).
		SetRationale(data.Rationale)

	if len(dims) > 0 {
		builder = builder.SetDimensions(dims)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save verdict event: %w", err)
	}
	return nil
}

func (r *eventRepo) VerdictForRun(ctx context.Context, runID string) (*Verdict, error) {
	e, err := r.client.VerdictEvent.Query().
		Where(verdictevent.RunID(runID)).
		Order(ent.Desc(verdictevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query verdict for run: %w", err)
	}

	v := &Verdict{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		RunID:     e.RunID,
		Accept:    e.Accept,
		HardStop:  e.HardStop,
		Rationale: e.Rationale,
	}
	for _, d := range e.Dimensions {
		v.Dimensions = append(v.Dimensions, DimensionScoreData{
			Name:          d.Name,
			Score:         d.Score,
			NotApplicable: d.NotApplicable,
			Rationale:     d.Rationale,
		})
	}
	return v, nil
}
