package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden loads the scenario at path, executes it with a fixed run
// token derived from the scenario name, verifies its expectations, and
// compares the snapshot against testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files are the source of truth for the conformance matrix; a
// snapshot diff means either the core's semantics changed or a fixture
// was edited without regenerating.
func RunWithGolden(t *testing.T, path string) error {
	t.Helper()

	scenario, err := LoadScenario(path)
	if err != nil {
		return err
	}

	report, err := Execute(scenario, NewFixedGenerator("run-"+scenario.Name))
	if err != nil {
		return fmt.Errorf("execute %s: %w", scenario.Name, err)
	}
	if err := report.Verify(scenario); err != nil {
		return fmt.Errorf("verify %s: %w", scenario.Name, err)
	}

	snapshot, err := report.Snapshot()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)

	return nil
}
