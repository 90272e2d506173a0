package config

// gameConfigSchema is the JSON schema a game-config file must satisfy
// before it is decoded. Operand bounds are per operation; the mix weights
// are relative percentages.
var gameConfigSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"maxResult": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Upper bound for every intermediate and final value",
		},
		"chainLength": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Target number of problems per chain",
		},
		"chainCount": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Target number of chains per worksheet",
		},
		"allowNegativeResults": map[string]any{
			"type":        "boolean",
			"description": "Permit subtraction results down to -maxResult",
		},
		"operations": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"add":      operationSchema,
				"subtract": operationSchema,
				"multiply": operationSchema,
				"divide":   operationSchema,
			},
			"additionalProperties": false,
		},
		"operationMix": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"add":      mixWeightSchema,
				"subtract": mixWeightSchema,
				"multiply": mixWeightSchema,
				"divide":   mixWeightSchema,
			},
			"required":             []any{"add", "subtract", "multiply", "divide"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"maxResult", "chainLength", "chainCount", "operationMix"},
	"additionalProperties": false,
}

var operationSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"enabled": map[string]any{"type": "boolean"},
		"frequency": map[string]any{
			"type": "string",
			"enum": []any{"never", "rare", "normal", "often"},
		},
		"minValue": map[string]any{"type": "integer", "minimum": 1},
		"maxValue": map[string]any{"type": "integer", "minimum": 1},
	},
	"required":             []any{"minValue", "maxValue"},
	"additionalProperties": false,
}

var mixWeightSchema = map[string]any{
	"type":    "number",
	"minimum": 0,
}
