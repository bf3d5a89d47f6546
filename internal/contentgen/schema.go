package contentgen

import "github.com/abhisek/sprouts/internal/llm"

// ColorItemSchema is the structured response for a color item suggestion.
var ColorItemSchema = &llm.Schema{
	Name:        "color-item",
	Description: "A simple object and the main color it is drawn in",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "A simple, common object a young child knows, one lowercase word",
			},
			"color": map[string]any{
				"type":        "string",
				"description": "The primary color of the object, one lowercase word",
			},
		},
		"required":             []any{"name", "color"},
		"additionalProperties": false,
	},
}
