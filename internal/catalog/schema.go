package catalog

// taskListSchema is the JSON Schema a catalog file must conform to.
// Validation happens before decoding so malformed entries are rejected
// with a named error instead of failing later on a missing field.
var taskListSchema = map[string]any{
	"type":     "array",
	"minItems": 0,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"category": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"answer": map[string]any{
				"type": "string",
			},
			"explanation": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"id", "category", "question", "answer"},
		"additionalProperties": false,
	},
}
