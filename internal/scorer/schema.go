package scorer

import "github.com/kelsic/dialogia/internal/oracle"

// scoreSchema is the shape every dimension score comes back in.
var scoreSchema = &oracle.Schema{
	Name:        "rubric-score",
	Description: "One rubric dimension score",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     MinScore,
				"maximum":     MaxScore,
				"description": "Dimension score on the 0-10 scale defined in the rubric",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One or two sentences justifying the score",
			},
		},
		"required":             []any{"score", "rationale"},
		"additionalProperties": false,
	},
}

// traumaSchema extends the score shape with the hard-stop flags. Only the
// trauma boundary dimension reports hard stops.
var traumaSchema = &oracle.Schema{
	Name:        "rubric-trauma-score",
	Description: "Trauma boundary score with hard-stop flags",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "number",
				"minimum":     MinScore,
				"maximum":     MaxScore,
				"description": "Trauma risk on the 0-10 scale, 0 when every boundary was respected",
			},
			"hard_stops": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
					"enum": []any{
						HardStopShaming,
						HardStopCompleteAnswer,
						HardStopEmotionalDismissal,
						HardStopAgencyRemoval,
					},
				},
				"description": "Every boundary that was crossed, empty when none were",
			},
			"rationale": map[string]any{
				"type":        "string",
				"description": "One or two sentences justifying the score",
			},
		},
		"required":             []any{"score", "hard_stops", "rationale"},
		"additionalProperties": false,
	},
}

// scoreOutput is the raw oracle response for one dimension. Score is a
// pointer so a response that omits it entirely is distinguishable from
// a genuine zero.
type scoreOutput struct {
	Score     *float64 `json:"score"`
	HardStops []string `json:"hard_stops,omitempty"`
	Rationale string   `json:"rationale"`
}
