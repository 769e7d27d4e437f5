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

// OracleRequestEventData captures the data for a single oracle request event.
type OracleRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	RunID        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// OracleEvent is the read model for a stored oracle request event.
type OracleEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	RunID        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// OracleUsage aggregates token usage over a grouping key (purpose or model).
type OracleUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// RunEventData captures one lifecycle transition of a dialogue run.
type RunEventData struct {
	RunID            string
	Action           string // "start" or "finish"
	ScenarioID       string
	StudentName      string
	Outcome          string // "accepted", "rejected", or "failed" (finish only)
	Exchanges        int
	StudentExchanges int
	PushbackRate     float64
	ErrorMessage     string
}

// DimensionScoreData is one rubric dimension result inside a verdict.
type DimensionScoreData struct {
	Name          string
	Score         float64
	NotApplicable bool
	Rationale     string
}

// VerdictEventData captures the rubric verdict for a completed run.
type VerdictEventData struct {
	RunID      string
	Accept     bool
	HardStop   bool
	Dimensions []DimensionScoreData
	Rationale  string
}

// Verdict is the read model for a stored verdict event.
type Verdict struct {
	ID         int
	Sequence   int64
	Timestamp  time.Time
	RunID      string
	Accept     bool
	HardStop   bool
	Dimensions []DimensionScoreData
	Rationale  string
}

// RunOutcomeStats aggregates finished runs by outcome.
type RunOutcomeStats struct {
	Outcome         string
	Runs            int
	AvgExchanges    float64
	AvgPushbackRate float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendOracleRequest records an oracle API call event.
	AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error

	// QueryOracleEvents returns oracle events newest-first.
	QueryOracleEvents(ctx context.Context, opts QueryOpts) ([]OracleEvent, error)

	// GetOracleEvent returns one event by ID, or nil if not found.
	GetOracleEvent(ctx context.Context, id int) (*OracleEvent, error)

	// OracleUsageByPurpose aggregates token usage grouped by purpose label.
	OracleUsageByPurpose(ctx context.Context) ([]OracleUsage, error)

	// OracleUsageByModel aggregates token usage grouped by model ID.
	OracleUsageByModel(ctx context.Context) ([]OracleUsage, error)

	// AppendRun records a run lifecycle event.
	AppendRun(ctx context.Context, data RunEventData) error

	// RunOutcomes aggregates finished runs grouped by outcome.
	RunOutcomes(ctx context.Context) ([]RunOutcomeStats, error)

	// AppendVerdict records a rubric verdict event.
	AppendVerdict(ctx context.Context, data VerdictEventData) error

	// VerdictForRun returns the verdict for a run, or nil if none recorded.
	VerdictForRun(ctx context.Context, runID string) (*Verdict, error)
}
