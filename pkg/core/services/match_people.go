// Package services orchestrates roster ingestion, scoring and solving for
// the CLI.
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hartfield-tutoring/adviser-match/internal/config"
	"github.com/hartfield-tutoring/adviser-match/pkg/core/match"
	"github.com/hartfield-tutoring/adviser-match/pkg/core/schedule"
	"github.com/hartfield-tutoring/adviser-match/pkg/ingest"
)

// MatchResult contains everything the CLI needs to render a run.
type MatchResult struct {
	RunID          string
	Strategy       string
	AdviserCount   int
	LearnerCount   int
	CandidateCount int
	Assignment     match.Assignment

	// Loads and PrimaryOverlapHours are populated by the phased strategy
	// only.
	Loads               map[string]int
	PrimaryOverlapHours float64

	// Warnings are roster data-quality issues that did not stop the run.
	Warnings []string

	Elapsed time.Duration
}

// MatchPeople runs the full pipeline: load both rosters, score every
// adviser/learner combination once through a shared intersection cache,
// and solve with the strategy named in the config (or the override, if
// non-empty).
func MatchPeople(cfg *config.Config, logger *zap.Logger, strategyOverride string) (*MatchResult, error) {
	start := time.Now()

	strategy := cfg.Strategy
	if strategyOverride != "" {
		strategy = strategyOverride
	}
	if strategy != config.StrategyGreedy && strategy != config.StrategyPhased {
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	advisers, adviserWarnings, err := ingest.ReadAdvisers(cfg.AdviserRoster)
	if err != nil {
		return nil, fmt.Errorf("failed to load advisers: %w", err)
	}
	learners, learnerWarnings, err := ingest.ReadLearners(cfg.LearnerRoster)
	if err != nil {
		return nil, fmt.Errorf("failed to load learners: %w", err)
	}

	logger.Info("rosters loaded",
		zap.Int("advisers", len(advisers)),
		zap.Int("learners", len(learners)),
		zap.Int("warnings", len(adviserWarnings)+len(learnerWarnings)))

	cache := schedule.NewCache()
	scorer := match.NewScorer(cfg.Weights(), cache)
	candidates := scorer.ScoreAll(advisers, learners)

	logger.Debug("candidate pairs scored",
		zap.Int("candidates", len(candidates)),
		zap.Int("cached_intersections", cache.Len()))

	result := &MatchResult{
		RunID:          uuid.NewString(),
		Strategy:       strategy,
		AdviserCount:   len(advisers),
		LearnerCount:   len(learners),
		CandidateCount: len(candidates),
		Warnings:       append(adviserWarnings, learnerWarnings...),
	}

	switch strategy {
	case config.StrategyPhased:
		outcome := match.NewPhasedSolver(scorer).SolveDetailed(advisers, learners, candidates)
		result.Assignment = outcome.Assignment
		result.Loads = outcome.Loads
		result.PrimaryOverlapHours = outcome.PrimaryOverlapHours
	default:
		result.Assignment = match.NewGreedySolver().Solve(advisers, learners, candidates)
	}

	result.Elapsed = time.Since(start)
	logger.Info("matching complete",
		zap.String("run_id", result.RunID),
		zap.String("strategy", strategy),
		zap.Int("pairs", len(result.Assignment.Pairs)),
		zap.Int("unassigned_learners", len(result.Assignment.UnassignedLearnerIDs)),
		zap.Duration("elapsed", result.Elapsed))

	return result, nil
}
