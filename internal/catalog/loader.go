package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed seed.json
var seedJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load reads and validates the task catalog at path.
// Every failure mode — missing file, invalid JSON, schema violation,
// duplicate ID — surfaces as *ErrLoad.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrLoad{Source: path, Err: err}
	}
	c, err := parse(raw)
	if err != nil {
		return nil, &ErrLoad{Source: path, Err: err}
	}
	return c, nil
}

// LoadSeed returns the embedded starter catalog, used when no catalog
// path is configured.
func LoadSeed() (*Catalog, error) {
	c, err := parse(seedJSON)
	if err != nil {
		return nil, &ErrLoad{Source: "embedded seed", Err: err}
	}
	return c, nil
}

func parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	seen := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id %q", t.ID)
		}
		seen[t.ID] = true
	}

	return New(tasks), nil
}

// getCompiledSchema compiles the task-list schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://task-list.json", taskListSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://task-list.json")
	})
	return compiledSchema, compileErr
}
