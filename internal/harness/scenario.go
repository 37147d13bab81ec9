package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a sequence of checked
// accumulation runs with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario. Golden snapshots are stored
	// under testdata/golden/{Name}.golden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Runs contains the accumulation runs to execute, in order.
	Runs []Run `yaml:"runs"`
}

// Run describes a single checked accumulation.
type Run struct {
	// Op is the operation to perform: OpAdd or OpSubtract.
	Op string `yaml:"op"`

	// Kind names the numeric kind, e.g. "int8" or "float64".
	Kind string `yaml:"kind"`

	// Start is the starting value as a per-kind literal, or the token
	// "max" or "min".
	Start string `yaml:"start"`

	// Step is the per-step magnitude, same format as Start.
	Step string `yaml:"step"`

	// Count is the number of steps requested.
	Count uint64 `yaml:"count"`

	// Expect specifies the expected result. If nil, the run's outcome is
	// recorded in the report but not validated.
	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect specifies the expected outcome of a run.
type Expect struct {
	// Value is the expected final value in canonical form (numeric.Format).
	Value string `yaml:"value"`

	// OK is the expected success flag.
	OK bool `yaml:"ok"`
}

// Operation names accepted in Run.Op.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "expects:" vs "expect:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(s.Runs) == 0 {
		return fmt.Errorf("at least one run is required")
	}
	for i, r := range s.Runs {
		if r.Op != OpAdd && r.Op != OpSubtract {
			return fmt.Errorf("runs[%d]: unknown op %q", i, r.Op)
		}
		if _, ok := runners[r.Kind]; !ok {
			return fmt.Errorf("runs[%d]: unknown kind %q", i, r.Kind)
		}
		if r.Start == "" {
			return fmt.Errorf("runs[%d]: start is required", i)
		}
		if r.Step == "" {
			return fmt.Errorf("runs[%d]: step is required", i)
		}
	}
	return nil
}
