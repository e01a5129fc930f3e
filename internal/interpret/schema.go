package interpret

import "github.com/mirit/psyche/internal/llm"

// ReadingSchema defines the JSON schema for LLM-written readings.
var ReadingSchema = &llm.Schema{
	Name:        "profile-reading",
	Description: "A short personal reading of assessment results",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence overview of the profile, second person, warm but factual",
			},
			"dimension_notes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"dimension_id": map[string]any{
							"type":        "string",
							"description": "The dimension ID exactly as given in the input",
						},
						"note": map[string]any{
							"type":        "string",
							"description": "1-2 sentences on what this score means day to day",
						},
					},
					"required":             []any{"dimension_id", "note"},
					"additionalProperties": false,
				},
				"description": "One note per scored dimension",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 concrete suggestions (10-20 words each)",
			},
		},
		"required":             []any{"summary", "dimension_notes", "tips"},
		"additionalProperties": false,
	},
}
