// Package config loads custom game configurations from JSON files,
// validating them against a schema before handing a chaingen.Config to the
// caller. This is the boundary where bad input gets rejected; inside the
// engine every configuration is assumed playable.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/chainiz/internal/chaingen"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// fileConfig mirrors the JSON layout of a game-config file.
type fileConfig struct {
	MaxResult            int                      `json:"maxResult"`
	ChainLength          int                      `json:"chainLength"`
	ChainCount           int                      `json:"chainCount"`
	AllowNegativeResults bool                     `json:"allowNegativeResults"`
	Operations           map[string]fileOperation `json:"operations"`
	OperationMix         map[string]float64       `json:"operationMix"`
}

type fileOperation struct {
	Enabled   *bool  `json:"enabled"`
	Frequency string `json:"frequency"`
	MinValue  int    `json:"minValue"`
	MaxValue  int    `json:"maxValue"`
}

// Load reads and parses a game-config file.
func Load(path string) (chaingen.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chaingen.Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return chaingen.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw JSON against the game-config schema and decodes it.
// Operations omitted from the file keep the defaults from
// chaingen.DefaultConfig.
func Parse(data []byte) (chaingen.Config, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return chaingen.Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return chaingen.Config{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return chaingen.Config{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return chaingen.Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := chaingen.DefaultConfig()
	cfg.MaxResult = fc.MaxResult
	cfg.ChainLength = fc.ChainLength
	cfg.ChainCount = fc.ChainCount
	cfg.AllowNegative = fc.AllowNegativeResults
	cfg.Mix = chaingen.Mix{
		Add:      fc.OperationMix["add"],
		Subtract: fc.OperationMix["subtract"],
		Multiply: fc.OperationMix["multiply"],
		Divide:   fc.OperationMix["divide"],
	}

	applyOperation(&cfg.Add, fc.Operations["add"], hasOp(fc, "add"))
	applyOperation(&cfg.Subtract, fc.Operations["subtract"], hasOp(fc, "subtract"))
	applyOperation(&cfg.Multiply, fc.Operations["multiply"], hasOp(fc, "multiply"))
	applyOperation(&cfg.Divide, fc.Operations["divide"], hasOp(fc, "divide"))

	for _, op := range chaingen.AllOperations() {
		oc := cfg.OpConfig(op)
		if oc.MinValue > oc.MaxValue {
			return chaingen.Config{}, fmt.Errorf("operation %s: minValue %d exceeds maxValue %d", op, oc.MinValue, oc.MaxValue)
		}
	}

	return cfg, nil
}

func hasOp(fc fileConfig, name string) bool {
	_, ok := fc.Operations[name]
	return ok
}

func applyOperation(dst *chaingen.OperationConfig, src fileOperation, present bool) {
	if !present {
		return
	}
	dst.MinValue = src.MinValue
	dst.MaxValue = src.MaxValue
	if src.Enabled != nil {
		dst.Enabled = *src.Enabled
	}
	if src.Frequency != "" {
		dst.Frequency = chaingen.Frequency(src.Frequency)
	}
}

// getSchema compiles the game-config schema once and caches it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw
		// bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(gameConfigSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://game-config.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
