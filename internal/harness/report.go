package harness

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Report captures the complete outcome of a scenario execution.
// Field order is the snapshot order; all values are canonical strings, so
// serialization is deterministic for golden comparison.
type Report struct {
	Scenario string   `json:"scenario"`
	RunToken string   `json:"run_token"`
	Results  []Result `json:"results"`
}

// Verify checks every result against the scenario's expectations.
// Runs without an expect clause are skipped. All mismatches are reported,
// not just the first.
func (rep *Report) Verify(s *Scenario) error {
	if len(rep.Results) != len(s.Runs) {
		return fmt.Errorf("report has %d results for %d runs", len(rep.Results), len(s.Runs))
	}

	var failures []error
	for i, r := range s.Runs {
		if r.Expect == nil {
			continue
		}
		got := rep.Results[i]
		if got.Value != r.Expect.Value || got.OK != r.Expect.OK {
			failures = append(failures, fmt.Errorf(
				"runs[%d] %s %s: got (%s, %t), want (%s, %t)",
				i, r.Op, r.Kind, got.Value, got.OK, r.Expect.Value, r.Expect.OK))
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d expectation(s) failed: %w", len(failures), errors.Join(failures...))
	}
	return nil
}

// Snapshot renders the report for golden comparison. A trailing newline
// keeps the fixture files friendly to text tools.
func (rep *Report) Snapshot() ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return append(data, '\n'), nil
}
