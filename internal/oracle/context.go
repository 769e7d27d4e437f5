package oracle

import "context"

type contextKey string

const purposeKey contextKey = "oracle_purpose"

// WithPurpose attaches a purpose label to the context for event logging.
// Labels in use: "persona-opening", "persona-turn", "student-turn",
// "rubric-score".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

const runIDKey contextKey = "oracle_run_id"

// WithRunID attaches the dialogue run ID to the context so logged events
// can be correlated with the run that produced them.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFrom extracts the run ID from the context, or "" if unset.
func RunIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(runIDKey).(string); ok {
		return v
	}
	return ""
}
