// Package config loads and validates the matcher configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hartfield-tutoring/adviser-match/pkg/core/match"
)

// Strategy names accepted in configuration and on the command line.
const (
	StrategyGreedy = "greedy"
	StrategyPhased = "phased"
)

// Scoring holds the soft-score weights. Zero values fall back to the
// engine defaults.
type Scoring struct {
	OverlapBase   float64   `yaml:"overlapBase" validate:"gte=0"`
	TwoHourBonus  float64   `yaml:"twoHourBonus" validate:"gte=0"`
	LanguageBonus float64   `yaml:"languageBonus" validate:"gte=0"`
	TopicRank     []float64 `yaml:"topicRank,omitempty" validate:"omitempty,dive,gt=0"`
}

// Config represents the application configuration.
type Config struct {
	AdviserRoster string  `yaml:"adviserRoster" validate:"required"`
	LearnerRoster string  `yaml:"learnerRoster" validate:"required"`
	ReportDir     string  `yaml:"reportDir,omitempty"`
	Strategy      string  `yaml:"strategy,omitempty" validate:"omitempty,oneof=greedy phased"`
	Scoring       Scoring `yaml:"scoring,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from adviser_match.yaml,
// looking in the current directory first, then in the user's home
// directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Strategy == "" {
		cfg.Strategy = StrategyGreedy
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "reports"
	}

	defaults := match.DefaultWeights()
	if cfg.Scoring.OverlapBase == 0 {
		cfg.Scoring.OverlapBase = defaults.OverlapBase
	}
	if cfg.Scoring.TwoHourBonus == 0 {
		cfg.Scoring.TwoHourBonus = defaults.TwoHourBonus
	}
	if cfg.Scoring.LanguageBonus == 0 {
		cfg.Scoring.LanguageBonus = defaults.LanguageBonus
	}
	if len(cfg.Scoring.TopicRank) == 0 {
		cfg.Scoring.TopicRank = defaults.TopicRank
	}
}

// Validate validates the configuration struct and checks that topic-rank
// bonuses are strictly decreasing.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i := 1; i < len(cfg.Scoring.TopicRank); i++ {
		if cfg.Scoring.TopicRank[i] >= cfg.Scoring.TopicRank[i-1] {
			return fmt.Errorf("scoring.topicRank must be strictly decreasing, got %v", cfg.Scoring.TopicRank)
		}
	}

	return nil
}

// Weights converts the scoring section into engine weights.
func (c *Config) Weights() match.Weights {
	return match.Weights{
		OverlapBase:   c.Scoring.OverlapBase,
		TwoHourBonus:  c.Scoring.TwoHourBonus,
		LanguageBonus: c.Scoring.LanguageBonus,
		TopicRank:     c.Scoring.TopicRank,
	}
}

// findConfigFile searches for adviser_match.yaml in the current directory
// and the home directory.
func findConfigFile() (string, error) {
	configFileName := "adviser_match.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
