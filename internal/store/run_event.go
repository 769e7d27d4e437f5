package store

import (
	"context"
	"fmt"

	"github.com/kelsic/dialogia/ent"
	"github.com/kelsic/dialogia/ent/runevent"
)

func (r *eventRepo) AppendRun(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RunEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetAction(data.Action).
		SetScenarioID(data.ScenarioID).
		SetStudentName(data.StudentName).
		SetOutcome(data.Outcome).
		SetExchanges(data.Exchanges).
		SetStudentExchanges(data.StudentExchanges).
		SetPushbackRate(data.PushbackRate).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) RunOutcomes(ctx context.Context) ([]RunOutcomeStats, error) {
	var rows []struct {
		Outcome         string  `json:"outcome"`
		Runs            int     `json:"runs"`
		AvgExchanges    float64 `json:"avg_exchanges"`
		AvgPushbackRate float64 `json:"avg_pushback_rate"`
	}

	err := r.client.RunEvent.Query().
		Where(runevent.Action("finish")).
		GroupBy(runevent.FieldOutcome).
		Aggregate(
			ent.As(ent.Count(), "runs"),
			ent.As(ent.Mean(runevent.FieldExchanges), "avg_exchanges"),
			ent.As(ent.Mean(runevent.FieldPushbackRate), "avg_pushback_rate"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate run outcomes: %w", err)
	}

	stats := make([]RunOutcomeStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, RunOutcomeStats{
			Outcome:         row.Outcome,
			Runs:            row.Runs,
			AvgExchanges:    row.AvgExchanges,
			AvgPushbackRate: row.AvgPushbackRate,
		})
	}
	return stats, nil
}
