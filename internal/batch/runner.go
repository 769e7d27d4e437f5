package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kelsic/dialogia/internal/content"
	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/export"
	"github.com/kelsic/dialogia/internal/oracle"
	"github.com/kelsic/dialogia/internal/scorer"
	"github.com/kelsic/dialogia/internal/store"
	"github.com/kelsic/dialogia/internal/student"
)

// Runner executes discovery cycles. Each run is an isolated unit of
// work with its own student model, transcript, and verdict; the runner
// only fans them out and collects results.
type Runner struct {
	provider oracle.Provider
	events   store.EventRepo
	log      *zap.Logger
}

// NewRunner creates a runner. events may be nil to skip event recording;
// log may be nil for a no-op logger.
func NewRunner(provider oracle.Provider, events store.EventRepo, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{provider: provider, events: events, log: log}
}

// runSpec is one planned run. Specs are generated up front, in order,
// so the seeded persona generator is never touched concurrently.
type runSpec struct {
	runID    string
	student  student.ProfileConfig
	scenario content.Scenario
	persona  content.Persona
}

// RunCycle tests IterationsPerPair random personas against every
// student-scenario pair, scores each completed dialogue, and returns
// the aggregated report. A single run failing never aborts the cycle;
// it is recorded with the failed outcome and the cycle moves on.
func (r *Runner) RunCycle(ctx context.Context, cfg Config) (*Report, error) {
	if len(cfg.Students) == 0 {
		return nil, fmt.Errorf("cycle: no student configs")
	}
	if len(cfg.Scenarios) == 0 {
		return nil, fmt.Errorf("cycle: no scenarios")
	}
	if len(cfg.Deck) == 0 {
		return nil, fmt.Errorf("cycle: empty question deck")
	}
	if cfg.Library == nil {
		return nil, fmt.Errorf("cycle: no template library")
	}
	if cfg.IterationsPerPair < 1 {
		return nil, fmt.Errorf("cycle: iterations per pair must be at least 1, got %d", cfg.IterationsPerPair)
	}
	if cfg.Scheduler.MaxRounds == 0 {
		cfg.Scheduler = dialogue.DefaultConfig()
	}
	if cfg.Scorer.MaxTokens == 0 {
		cfg.Scorer = scorer.DefaultConfig()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	gen := content.NewProcgenGenerator(cfg.Deck, cfg.Seed)
	var specs []runSpec
	for _, sc := range cfg.Scenarios {
		for _, st := range cfg.Students {
			for i := 0; i < cfg.IterationsPerPair; i++ {
				specs = append(specs, runSpec{
					runID:    uuid.NewString(),
					student:  st,
					scenario: sc,
					persona:  gen.RandomPersona(0),
				})
			}
		}
	}

	report := &Report{
		CycleID:   newCycleID(),
		StartedAt: time.Now().UTC(),
		Total:     len(specs),
	}
	r.log.Info("discovery cycle started",
		zap.String("cycle_id", report.CycleID),
		zap.Int("runs", len(specs)),
		zap.Int("concurrency", concurrency))

	results := make([]Result, len(specs))
	pairs := make([]*export.Pair, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, sp := range specs {
		g.Go(func() error {
			results[i], pairs[i] = r.runOne(gctx, cfg, sp)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.FinishedAt = time.Now().UTC()
	report.Results = results
	for _, res := range results {
		switch res.Outcome {
		case OutcomeAccepted:
			report.Accepted++
		case OutcomeRejected:
			report.Rejected++
		case OutcomeFailed:
			report.Failed++
		}
	}
	report.Analysis = Analyze(results)

	r.log.Info("discovery cycle finished",
		zap.String("cycle_id", report.CycleID),
		zap.Int("accepted", report.Accepted),
		zap.Int("rejected", report.Rejected),
		zap.Int("failed", report.Failed))

	if cfg.ArtifactDir != "" {
		if err := writeArtifacts(cfg.ArtifactDir, report, pairs); err != nil {
			return report, fmt.Errorf("write cycle artifacts: %w", err)
		}
	}
	return report, nil
}

func (r *Runner) runOne(ctx context.Context, cfg Config, sp runSpec) (Result, *export.Pair) {
	res := Result{
		RunID:        sp.runID,
		Student:      sp.student.Name,
		ScenarioID:   sp.scenario.ID,
		Persona:      sp.persona.Name,
		QuestionKeys: sp.persona.QuestionKeys,
	}
	log := r.log.With(
		zap.String("run_id", sp.runID),
		zap.String("student", sp.student.Name),
		zap.String("scenario", sp.scenario.ID))

	r.recordRun(ctx, store.RunEventData{
		RunID:       sp.runID,
		Action:      "start",
		ScenarioID:  sp.scenario.ID,
		StudentName: sp.student.Name,
	})

	model, err := student.Compose(sp.student, cfg.Library)
	if err != nil {
		return r.fail(ctx, log, res, fmt.Errorf("compose student: %w", err)), nil
	}

	sched := dialogue.NewScheduler(r.provider, cfg.Scheduler)
	transcript, err := sched.Run(ctx, dialogue.RunInput{
		RunID:    sp.runID,
		Scenario: sp.scenario,
		Personas: []content.Persona{sp.persona},
		Deck:     cfg.Deck,
		Student:  model,
	})
	if err != nil {
		return r.fail(ctx, log, res, err), nil
	}

	stats, err := dialogue.Replay(transcript)
	if err != nil {
		return r.fail(ctx, log, res, err), nil
	}
	res.Exchanges = len(transcript.Exchanges)
	res.StudentExchanges = stats.StudentExchanges
	res.PushbackRate = stats.PushbackRate

	sc := scorer.NewScorer(r.provider, cfg.Scorer)
	verdict, err := sc.Score(ctx, transcript)
	if err != nil {
		return r.fail(ctx, log, res, fmt.Errorf("score: %w", err)), nil
	}
	res.Verdict = verdict

	r.recordVerdict(ctx, verdict)

	if verdict.Accept {
		res.Outcome = OutcomeAccepted
	} else {
		res.Outcome = OutcomeRejected
	}
	r.recordRun(ctx, store.RunEventData{
		RunID:            sp.runID,
		Action:           "finish",
		ScenarioID:       sp.scenario.ID,
		StudentName:      sp.student.Name,
		Outcome:          res.Outcome,
		Exchanges:        res.Exchanges,
		StudentExchanges: res.StudentExchanges,
		PushbackRate:     res.PushbackRate,
	})
	log.Info("run finished",
		zap.String("outcome", res.Outcome),
		zap.Float64("pushback_rate", res.PushbackRate))

	if !verdict.Accept {
		return res, nil
	}
	return res, &export.Pair{Transcript: transcript, Verdict: verdict}
}

func (r *Runner) fail(ctx context.Context, log *zap.Logger, res Result, err error) Result {
	res.Outcome = OutcomeFailed
	res.Error = err.Error()
	r.recordRun(ctx, store.RunEventData{
		RunID:        res.RunID,
		Action:       "finish",
		ScenarioID:   res.ScenarioID,
		StudentName:  res.Student,
		Outcome:      OutcomeFailed,
		ErrorMessage: res.Error,
	})
	log.Warn("run failed", zap.Error(err))
	return res
}

// recordRun and recordVerdict log store failures instead of failing the
// run; event history is best effort.
func (r *Runner) recordRun(ctx context.Context, data store.RunEventData) {
	if r.events == nil {
		return
	}
	if err := r.events.AppendRun(ctx, data); err != nil {
		r.log.Warn("record run event", zap.String("run_id", data.RunID), zap.Error(err))
	}
}

func (r *Runner) recordVerdict(ctx context.Context, v *scorer.Verdict) {
	if r.events == nil {
		return
	}
	dims := make([]store.DimensionScoreData, 0, len(v.Dimensions))
	for _, d := range v.Dimensions {
		dims = append(dims, store.DimensionScoreData{
			Name:          d.Name,
			Score:         d.Score,
			NotApplicable: d.NotApplicable,
			Rationale:     d.Rationale,
		})
	}
	err := r.events.AppendVerdict(ctx, store.VerdictEventData{
		RunID:      v.RunID,
		Accept:     v.Accept,
		HardStop:   v.HardStop,
		Dimensions: dims,
		Rationale:  v.Rationale,
	})
	if err != nil {
		r.log.Warn("record verdict event", zap.String("run_id", v.RunID), zap.Error(err))
	}
}

func newCycleID() string {
	return fmt.Sprintf("%s-%s",
		time.Now().UTC().Format("2006-01-02T15-04-05"),
		uuid.NewString()[:8])
}
