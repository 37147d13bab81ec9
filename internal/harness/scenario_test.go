package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario drops a scenario file into a temp dir and returns its path.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadScenario_Valid parses a complete scenario.
func TestLoadScenario_Valid(t *testing.T) {
	path := writeScenario(t, `
name: demo
description: "int8 overflow matrix"
runs:
  - op: add
    kind: int8
    start: "0"
    step: "25"
    count: 6
    expect:
      value: "125"
      ok: false
`)

	s, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Name)
	require.Len(t, s.Runs, 1)

	run := s.Runs[0]
	assert.Equal(t, OpAdd, run.Op)
	assert.Equal(t, "int8", run.Kind)
	assert.Equal(t, uint64(6), run.Count)
	require.NotNil(t, run.Expect)
	assert.Equal(t, "125", run.Expect.Value)
	assert.False(t, run.Expect.OK)
}

// TestLoadScenario_MissingFile reports the underlying read error.
func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

// TestLoadScenario_UnknownField rejects typos via strict decoding.
func TestLoadScenario_UnknownField(t *testing.T) {
	path := writeScenario(t, `
name: demo
runs:
  - op: add
    kind: int8
    start: "0"
    step: "1"
    count: 1
    expects:
      value: "1"
      ok: true
`)

	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

// TestLoadScenario_Invalid covers the validation failures.
func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "runs:\n  - {op: add, kind: int8, start: \"0\", step: \"1\", count: 1}\n",
			wantErr: "name is required",
		},
		{
			name:    "no runs",
			content: "name: demo\n",
			wantErr: "at least one run",
		},
		{
			name:    "bad op",
			content: "name: demo\nruns:\n  - {op: multiply, kind: int8, start: \"0\", step: \"1\", count: 1}\n",
			wantErr: `unknown op "multiply"`,
		},
		{
			name:    "bad kind",
			content: "name: demo\nruns:\n  - {op: add, kind: int128, start: \"0\", step: \"1\", count: 1}\n",
			wantErr: `unknown kind "int128"`,
		},
		{
			name:    "missing start",
			content: "name: demo\nruns:\n  - {op: add, kind: int8, step: \"1\", count: 1}\n",
			wantErr: "start is required",
		},
		{
			name:    "missing step",
			content: "name: demo\nruns:\n  - {op: add, kind: int8, start: \"0\", count: 1}\n",
			wantErr: "step is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
