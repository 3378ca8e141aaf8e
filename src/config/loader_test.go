package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingExplicitPath(t *testing.T) {
	loader := NewLoader()
	cfg, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
metrics:
  - name: Code Smell
    min_abs_difference: 50
  - name: Duplications
branches:
  staging_patterns: ["stg"]
output:
  dir: reports
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "reports", cfg.Output.Dir)
	assert.Equal(t, float64(50), cfg.Policy("Code Smell").MinAbsDifference)
	assert.Equal(t, []string{"stg"}, cfg.Branches.StagingPatterns)
	// Untouched sections keep their defaults.
	assert.Equal(t, "Repository Name", cfg.Input.RepositoryColumn)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("QT_OUTPUT_DIR", "/tmp/out")
	path := writeConfig(t, `
output:
  dir: ${QT_OUTPUT_DIR}
github:
  repository: ${QT_REPO:-HarunAlKawser/charts}
`)

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.Equal(t, "HarunAlKawser/charts", cfg.GitHub.Repository)
}

func TestLoadRejectsInvalidMetrics(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "duplicate metric",
			content: `
metrics:
  - name: Code Smell
  - name: Code Smell
`,
		},
		{
			name: "negative threshold",
			content: `
metrics:
  - name: Code Smell
    min_abs_difference: -1
`,
		},
		{
			name: "empty name",
			content: `
metrics:
  - name: ""
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestPolicyFallback(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Policy("Unknown Metric")
	assert.Equal(t, "Unknown Metric", p.Name)
	assert.True(t, p.Significant(0.1))
	assert.False(t, p.Significant(0))
}

func TestMetricPolicySignificant(t *testing.T) {
	threshold := MetricPolicy{Name: "Code Smell", MinAbsDifference: 20}
	assert.False(t, threshold.Significant(19))
	assert.True(t, threshold.Significant(20))
	assert.True(t, threshold.Significant(-20))
	assert.False(t, threshold.Significant(-19.5))

	anyChange := MetricPolicy{Name: "Duplications"}
	assert.True(t, anyChange.Significant(-0.01))
	assert.False(t, anyChange.Significant(0))
}
