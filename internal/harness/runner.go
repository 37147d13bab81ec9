package harness

import (
	"fmt"

	"github.com/roach88/stepcheck"
	"github.com/roach88/stepcheck/numeric"
)

// Result records the outcome of a single run. Start, Step, and Value are
// in canonical form (numeric.Format), so "max" tokens appear resolved.
type Result struct {
	Op    string `json:"op"`
	Kind  string `json:"kind"`
	Start string `json:"start"`
	Step  string `json:"step"`
	Count uint64 `json:"count"`
	Value string `json:"value"`
	OK    bool   `json:"ok"`
}

// runner executes one Run for a fixed numeric kind.
type runner func(r Run) (Result, error)

// runners maps kind names to their concrete instantiation. This registry
// and numeric.Of are the only per-kind enumerations in the module.
var runners = map[string]runner{
	"int":     runFor[int],
	"int8":    runFor[int8],
	"int16":   runFor[int16],
	"int32":   runFor[int32],
	"int64":   runFor[int64],
	"uint":    runFor[uint],
	"uint8":   runFor[uint8],
	"uint16":  runFor[uint16],
	"uint32":  runFor[uint32],
	"uint64":  runFor[uint64],
	"float32": runFor[float32],
	"float64": runFor[float64],
}

// Kinds returns the names of all supported numeric kinds.
// Intended for validation messages and exploratory tests.
func Kinds() []string {
	names := make([]string, 0, len(runners))
	for name := range runners {
		names = append(names, name)
	}
	return names
}

func runFor[T numeric.Number](r Run) (Result, error) {
	start, err := numeric.Parse[T](r.Start)
	if err != nil {
		return Result{}, fmt.Errorf("%s %s: start: %w", r.Op, r.Kind, err)
	}
	step, err := numeric.Parse[T](r.Step)
	if err != nil {
		return Result{}, fmt.Errorf("%s %s: step: %w", r.Op, r.Kind, err)
	}

	var out stepcheck.Checked[T]
	switch r.Op {
	case OpAdd:
		out = stepcheck.Add(start, step, r.Count)
	case OpSubtract:
		out = stepcheck.Subtract(start, step, r.Count)
	default:
		return Result{}, fmt.Errorf("unknown op %q", r.Op)
	}

	return Result{
		Op:    r.Op,
		Kind:  r.Kind,
		Start: numeric.Format(start),
		Step:  numeric.Format(step),
		Count: r.Count,
		Value: numeric.Format(out.Value),
		OK:    out.OK,
	}, nil
}

// Execute runs every run of the scenario in order and returns the report.
// gen supplies the run token; nil selects UUIDv7Generator.
//
// Execute fails only on malformed runs (unparseable values, unknown kind
// or op). Expectation mismatches are not errors here; see Report.Verify.
func Execute(s *Scenario, gen TokenGenerator) (*Report, error) {
	if gen == nil {
		gen = UUIDv7Generator{}
	}

	report := &Report{
		Scenario: s.Name,
		RunToken: gen.Generate(),
		Results:  make([]Result, 0, len(s.Runs)),
	}
	for i, r := range s.Runs {
		run, ok := runners[r.Kind]
		if !ok {
			return nil, fmt.Errorf("runs[%d]: unknown kind %q", i, r.Kind)
		}
		res, err := run(r)
		if err != nil {
			return nil, fmt.Errorf("runs[%d]: %w", i, err)
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}
