package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stovesim/stovesim/sim/workload"
)

func TestLoadDefaultsConfig_ShippedFile_MatchesBuiltins(t *testing.T) {
	// Skip if defaults.yaml not available
	path := "defaults.yaml"
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = "../defaults.yaml"
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Skip("defaults.yaml not found, skipping integration test")
		}
	}

	// GIVEN the shipped defaults.yaml
	cfg, err := loadDefaultsConfig(path)

	// THEN it parses strictly and agrees with the compiled-in presets
	require.NoError(t, err)
	assert.Equal(t, builtinConfig(), cfg)
}

func TestLoadDefaultsConfig_UnknownField_Rejected(t *testing.T) {
	// GIVEN a typo in a variant key
	path := writeTempFile(t, "defaults.yaml", `
scenarios:
  - name: s
    spec: {num_jobs: 3, arrival_pattern: poisson, cook_time_dist: uniform, seed: 1}
variants:
  - {name: v, scheduler: fcfs, use_semaphor: true}
`)

	_, err := loadDefaultsConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "use_semaphor")
}

func TestLoadDefaultsConfig_InvalidEntries_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no scenarios",
			content: "variants:\n  - {name: v, scheduler: fcfs}\n",
			wantErr: "no scenarios",
		},
		{
			name: "unknown scheduler",
			content: "scenarios:\n  - name: s\n    spec: {num_jobs: 1, arrival_pattern: poisson, cook_time_dist: uniform}\n" +
				"variants:\n  - {name: v, scheduler: lifo}\n",
			wantErr: "unknown scheduler",
		},
		{
			name: "duplicate scenario",
			content: "scenarios:\n  - name: s\n    spec: {num_jobs: 1, arrival_pattern: poisson, cook_time_dist: uniform}\n" +
				"  - name: s\n    spec: {num_jobs: 1, arrival_pattern: poisson, cook_time_dist: uniform}\n" +
				"variants:\n  - {name: v, scheduler: fcfs}\n",
			wantErr: "unique",
		},
		{
			name: "bad arrival pattern",
			content: "scenarios:\n  - name: s\n    spec: {num_jobs: 1, arrival_pattern: weekly, cook_time_dist: uniform}\n" +
				"variants:\n  - {name: v, scheduler: fcfs}\n",
			wantErr: "arrival_pattern",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, "defaults.yaml", tc.content)
			_, err := loadDefaultsConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestResolveDefaultsConfig_MissingFile_FallsBackToBuiltins(t *testing.T) {
	// GIVEN a path that does not exist
	path := filepath.Join(t.TempDir(), "nope.yaml")

	// WHEN resolving defaults
	cfg, err := resolveDefaultsConfig(path)

	// THEN the built-in scenarios are used
	require.NoError(t, err)
	assert.Equal(t, workload.BuiltinScenarios(), cfg.Scenarios)
	assert.Equal(t, workload.BuiltinVariants(), cfg.Variants)
}

func TestResolveDefaultsConfig_MalformedFile_IsError(t *testing.T) {
	path := writeTempFile(t, "defaults.yaml", "scenarios: [")
	_, err := resolveDefaultsConfig(path)
	assert.Error(t, err)
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
