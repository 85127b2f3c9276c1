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
	path := filepath.Join(t.TempDir(), "adviser_match.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
adviserRoster: advisers.csv
learnerRoster: learners.csv
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, StrategyGreedy, cfg.Strategy)
	assert.Equal(t, "reports", cfg.ReportDir)
	assert.Equal(t, 1.0, cfg.Scoring.OverlapBase)
	assert.Equal(t, 5.0, cfg.Scoring.TwoHourBonus)
	assert.Equal(t, 2.0, cfg.Scoring.LanguageBonus)
	assert.Equal(t, []float64{1.5, 1.0, 0.5}, cfg.Scoring.TopicRank)
}

func TestLoadFromPath_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
adviserRoster: data/advisers.csv
learnerRoster: data/learners.csv
reportDir: out
strategy: phased
scoring:
  overlapBase: 2
  twoHourBonus: 10
  languageBonus: 3
  topicRank: [3, 2, 1]
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, StrategyPhased, cfg.Strategy)
	assert.Equal(t, "out", cfg.ReportDir)

	w := cfg.Weights()
	assert.Equal(t, 2.0, w.OverlapBase)
	assert.Equal(t, 10.0, w.TwoHourBonus)
	assert.Equal(t, 3.0, w.LanguageBonus)
	assert.Equal(t, []float64{3, 2, 1}, w.TopicRank)
}

func TestLoadFromPath_MissingRoster(t *testing.T) {
	path := writeConfig(t, `
learnerRoster: learners.csv
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_UnknownStrategy(t *testing.T) {
	path := writeConfig(t, `
adviserRoster: a.csv
learnerRoster: l.csv
strategy: optimal
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_NonDecreasingTopicRank(t *testing.T) {
	path := writeConfig(t, `
adviserRoster: a.csv
learnerRoster: l.csv
scoring:
  topicRank: [1, 1, 0.5]
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "strictly decreasing")
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `
adviserRoster: "a.csv"
  invalid indentation
learnerRoster: "l.csv"
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
