package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/hartfield-tutoring/adviser-match/internal/config"
	"github.com/hartfield-tutoring/adviser-match/pkg/core/match"
	"github.com/hartfield-tutoring/adviser-match/pkg/ingest"
)

// ExplainResult pairs the evaluated people with the scorer's diagnostic
// breakdown.
type ExplainResult struct {
	Adviser     match.Adviser
	Learner     match.Learner
	Explanation match.Explanation
}

// ExplainPair loads both rosters and reports why the given adviser and
// learner scored as they did, or why they are not a candidate.
func ExplainPair(cfg *config.Config, logger *zap.Logger, adviserID, learnerID string) (*ExplainResult, error) {
	advisers, _, err := ingest.ReadAdvisers(cfg.AdviserRoster)
	if err != nil {
		return nil, fmt.Errorf("failed to load advisers: %w", err)
	}
	learners, _, err := ingest.ReadLearners(cfg.LearnerRoster)
	if err != nil {
		return nil, fmt.Errorf("failed to load learners: %w", err)
	}

	adviser, ok := findAdviser(advisers, adviserID)
	if !ok {
		return nil, fmt.Errorf("adviser %q not found in roster", adviserID)
	}
	learner, ok := findLearner(learners, learnerID)
	if !ok {
		return nil, fmt.Errorf("learner %q not found in roster", learnerID)
	}

	scorer := match.NewScorer(cfg.Weights(), nil)
	ex := scorer.Explain(adviser, learner)

	logger.Debug("pair explained",
		zap.String("adviser", adviserID),
		zap.String("learner", learnerID),
		zap.Bool("compatible", ex.Compatible),
		zap.Float64("score", ex.Score))

	return &ExplainResult{Adviser: adviser, Learner: learner, Explanation: ex}, nil
}

func findAdviser(advisers []match.Adviser, id string) (match.Adviser, bool) {
	for _, a := range advisers {
		if a.ID == id {
			return a, true
		}
	}
	return match.Adviser{}, false
}

func findLearner(learners []match.Learner, id string) (match.Learner, bool) {
	for _, l := range learners {
		if l.ID == id {
			return l, true
		}
	}
	return match.Learner{}, false
}
