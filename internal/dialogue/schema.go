package dialogue

import "github.com/kelsic/dialogia/internal/oracle"

// TurnSchema defines the JSON schema for two-layer dialogue turns. Both
// personas and the student answer in this shape; the diegetic layer is
// what the other party hears, the non-diegetic layer is the speaker's
// declared reasoning.
var TurnSchema = &oracle.Schema{
	Name:        "dialogue-turn",
	Description: "One two-layer dialogue turn",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"diegetic": map[string]any{
				"type":        "string",
				"description": "What the speaker says, in character, 2-3 sentences",
			},
			"non_diegetic": map[string]any{
				"type":        "string",
				"description": "The speaker's brief declared reasoning for saying it",
			},
		},
		"required":             []any{"diegetic", "non_diegetic"},
		"additionalProperties": false,
	},
}

// turnOutput is the raw oracle response before validation.
type turnOutput struct {
	Diegetic    string `json:"diegetic"`
	NonDiegetic string `json:"non_diegetic"`
}
