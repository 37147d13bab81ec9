// Package harness provides conformance testing for the checked
// accumulation core.
//
// # Scenario format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	runs:
//	  - op: add            # add | subtract
//	    kind: int8         # any supported numeric kind
//	    start: "0"         # per-kind literal, or max | min
//	    step: "25"
//	    count: 6
//	    expect:
//	      value: "125"
//	      ok: false
//
// Start and step values are strings so that every kind round-trips
// exactly, including the full uint64 range. The tokens max and min resolve
// to the kind's limits, mirroring the classic underflow setup of
// subtracting down from the maximum.
//
// # Deterministic execution
//
// Execution is deterministic by construction (the core is pure); the only
// variable input is the run token. Golden comparison uses a FixedGenerator
// so that snapshots are identical across runs, while ad-hoc executions get
// time-sortable UUIDv7 tokens.
//
// # Usage
//
// Load and execute a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/int8_boundaries.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := harness.Execute(scenario, nil)
//
// Or drive the full golden comparison from a test:
//
//	harness.RunWithGolden(t, "testdata/scenarios/int8_boundaries.yaml")
package harness
