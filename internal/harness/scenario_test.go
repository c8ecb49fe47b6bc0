package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_FieldReport(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "field-report.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "field-report", s.Name)
	assert.Equal(t, "field-report-2026", s.RunToken)
	assert.Equal(t, 0, s.TopN, "unset top_n stays zero until Run applies the default")

	// Relative dataset paths resolve against the scenario file.
	assert.True(t, filepath.IsAbs(s.Dataset) || dirExists(s.Dataset))
	require.NotNil(t, s.Expect)
	assert.Len(t, s.Expect.DonationLeaders, 5)
	assert.Len(t, s.Expect.RegionalImpact, 3)
}

func TestLoadScenario_UnknownFieldRejected(t *testing.T) {
	path := writeScenario(t, `
name: typo
description: a scenario with a misspelled key
dataset: .
expects:
  donation_leaders: []
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadScenario_MissingName(t *testing.T) {
	path := writeScenario(t, `
description: nameless
dataset: .
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenario_DatasetDirMissing(t *testing.T) {
	path := writeScenario(t, `
name: ghost
description: points at a dataset directory that does not exist
dataset: ./no-such-dir
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dataset directory not found")
}

func TestLoadScenario_NegativeTopN(t *testing.T) {
	path := writeScenario(t, `
name: negative
description: top_n below zero is a scenario authoring error
dataset: .
top_n: -1
`)
	_, err := LoadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_n must be non-negative")
}

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
