package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readThresholds(t *testing.T, path string) ThresholdsConfig {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed struct {
		Coverage struct {
			Thresholds ThresholdsConfig `yaml:"thresholds"`
		} `yaml:"coverage"`
	}
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	return parsed.Coverage.Thresholds
}

func TestSaveThresholds_CreatesFileWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	th := ThresholdsConfig{MinOverall: 75, MinSafety: 90, MinIntegrity: 100, MaxErrors: 3}
	require.NoError(t, SaveThresholds(path, th))

	require.Equal(t, th, readThresholds(t, path))
}

func TestSaveThresholds_ReplacesExistingSection(t *testing.T) {
	path := writeConfig(t, `coverage:
  thresholds:
    min_overall: 60
    min_safety: 80
    min_integrity: 95
    max_errors: 10
`)

	th := ThresholdsConfig{MinOverall: 82, MinSafety: 100, MinIntegrity: 100, MaxErrors: 0}
	require.NoError(t, SaveThresholds(path, th))

	require.Equal(t, th, readThresholds(t, path))
}

func TestSaveThresholds_PreservesOtherSections(t *testing.T) {
	path := writeConfig(t, `# my config
output_dir: artifacts

provenance:
  max_entries: 500

coverage:
  thresholds:
    min_overall: 60
`)

	th := ThresholdsConfig{MinOverall: 70, MinSafety: 85, MinIntegrity: 96, MaxErrors: 5}
	require.NoError(t, SaveThresholds(path, th))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	require.Contains(t, content, "# my config")
	require.Contains(t, content, "output_dir: artifacts")
	require.Contains(t, content, "max_entries: 500")
	require.Equal(t, th, readThresholds(t, path))
}

func TestSaveThresholds_AddsCoverageSectionWhenAbsent(t *testing.T) {
	path := writeConfig(t, `output_dir: dist
`)

	th := ThresholdsConfig{MinOverall: 61, MinSafety: 81, MinIntegrity: 96, MaxErrors: 9}
	require.NoError(t, SaveThresholds(path, th))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "output_dir: dist")
	require.Equal(t, th, readThresholds(t, path))
}

func TestSaveThresholds_ScalarCoverageValueReplaced(t *testing.T) {
	path := writeConfig(t, `coverage: off
`)

	th := ThresholdsConfig{MinOverall: 60, MinSafety: 80, MinIntegrity: 95, MaxErrors: 10}
	require.NoError(t, SaveThresholds(path, th))

	require.Equal(t, th, readThresholds(t, path))
}

func TestSaveThresholds_RoundTripWithDefaults(t *testing.T) {
	path := writeConfig(t, DefaultConfigTemplate())

	th := ThresholdsConfig{MinOverall: 62.5, MinSafety: 100, MinIntegrity: 100, MaxErrors: 0}
	require.NoError(t, SaveThresholds(path, th))

	got := readThresholds(t, path)
	require.Equal(t, 62.5, got.MinOverall)
	require.Equal(t, 100.0, got.MinSafety)
	require.Zero(t, got.MaxErrors)
}

func TestSaveThresholds_NoLeftoverTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, SaveThresholds(path, Defaults().Coverage.Thresholds))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the config file should remain")
	require.Equal(t, "config.yaml", entries[0].Name())
}
