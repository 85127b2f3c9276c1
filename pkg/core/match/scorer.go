package match

import (
	"math"

	"github.com/hartfield-tutoring/adviser-match/pkg/core/schedule"
)

const (
	// PrimaryOverlapHours is the overlap duration that earns the dominant
	// schedule bonus and admits a pair into the phased solver's primary
	// pass.
	PrimaryOverlapHours = 2.0

	// SecondaryOverlapHours admits a pair into the phased solver's
	// secondary and fallback passes.
	SecondaryOverlapHours = 1.0
)

// Weights are the soft-scoring bonuses applied once a pair passes every
// hard gate.
type Weights struct {
	// OverlapBase is awarded for any non-zero schedule overlap.
	OverlapBase float64

	// TwoHourBonus is awarded when the overlap reaches PrimaryOverlapHours.
	// Schedule fit is the primary ranking signal, so this is the dominant
	// term.
	TwoHourBonus float64

	// LanguageBonus is awarded when the learner had a genuine language
	// requirement and the adviser meets it.
	LanguageBonus float64

	// TopicRank holds the bonus per matched preference rank, index 0 being
	// the learner's first choice. Values must be strictly decreasing;
	// ranks beyond the slice earn nothing.
	TopicRank []float64
}

// DefaultWeights returns the standard scoring weights. The two-hour bonus
// outweighs every other term combined.
func DefaultWeights() Weights {
	return Weights{
		OverlapBase:   1.0,
		TwoHourBonus:  5.0,
		LanguageBonus: 2.0,
		TopicRank:     []float64{1.5, 1.0, 0.5},
	}
}

// Scorer evaluates adviser/learner compatibility. Scoring is pure: inputs
// are never mutated and the only state is the injected intersection cache.
type Scorer struct {
	weights Weights
	cache   *schedule.Cache
}

// NewScorer builds a scorer around the given weights. A nil cache gets a
// fresh one, scoped to this scorer.
func NewScorer(weights Weights, cache *schedule.Cache) *Scorer {
	if cache == nil {
		cache = schedule.NewCache()
	}
	return &Scorer{weights: weights, cache: cache}
}

// Explanation is the full evaluation record for one pair: every hard-gate
// outcome and every soft-score component, usable to explain why a pair
// scored as it did or scored zero.
type Explanation struct {
	// Hard gates.
	TopicOK          bool
	SharedTopic      string
	TopicRank        int // 0-based rank in the learner's preference order, -1 when no shared topic
	LanguageRequired bool
	LanguageOK       bool
	LevelOK          bool
	Overlap          schedule.Schedule
	OverlapHours     float64

	// Compatible is true when all four gates passed.
	Compatible bool

	// Soft components, zero unless Compatible.
	BaseBonus     float64
	TwoHourBonus  float64
	LanguageBonus float64
	TopicBonus    float64

	// Score is the rounded sum of the components.
	Score float64
}

// Score evaluates the pair and returns the candidate plus true when every
// hard gate passes. A false return means "not a candidate", which is a
// data-shape outcome, not an error.
func (s *Scorer) Score(a Adviser, l Learner) (PairScore, bool) {
	ex := s.Explain(a, l)
	if !ex.Compatible {
		return PairScore{}, false
	}
	return PairScore{
		AdviserID:   a.ID,
		LearnerID:   l.ID,
		Score:       ex.Score,
		SharedTopic: ex.SharedTopic,
	}, true
}

// Explain runs the full evaluation and reports every intermediate result.
func (s *Scorer) Explain(a Adviser, l Learner) Explanation {
	ex := Explanation{TopicRank: -1}

	// Gate 1: at least one shared topic. The match is the learner's
	// highest-ranked topic the adviser covers.
	for rank, topic := range l.Topics {
		if containsTopic(a.Topics, topic) {
			ex.TopicOK = true
			ex.SharedTopic = topic
			ex.TopicRank = rank
			break
		}
	}

	// Gate 2: a learner with any secondary-language ability requires an
	// adviser at intermediate or better; a learner at none is always
	// compatible.
	ex.LanguageRequired = l.Language >= LanguageBasic
	ex.LanguageOK = !ex.LanguageRequired || a.Language >= LanguageIntermediate

	// Gate 3: level eligibility.
	ex.LevelOK = a.EligibleFor(l.Level)

	// Gate 4: non-empty schedule overlap.
	ex.Overlap = s.cache.Intersect(a.Availability, l.Availability)
	ex.OverlapHours = ex.Overlap.Hours()

	if !ex.TopicOK || !ex.LanguageOK || !ex.LevelOK || ex.OverlapHours <= 0 {
		return ex
	}
	ex.Compatible = true

	ex.BaseBonus = s.weights.OverlapBase
	if ex.OverlapHours >= PrimaryOverlapHours {
		ex.TwoHourBonus = s.weights.TwoHourBonus
	}
	if ex.LanguageRequired {
		ex.LanguageBonus = s.weights.LanguageBonus
	}
	if ex.TopicRank < len(s.weights.TopicRank) {
		ex.TopicBonus = s.weights.TopicRank[ex.TopicRank]
	}

	// Rounded to 2 decimals so floating-point jitter cannot reorder
	// sort-order ties downstream.
	ex.Score = round2(ex.BaseBonus + ex.TwoHourBonus + ex.LanguageBonus + ex.TopicBonus)
	return ex
}

// OverlapHours returns the rounded overlap duration for a pair through the
// shared intersection cache.
func (s *Scorer) OverlapHours(a Adviser, l Learner) float64 {
	return s.cache.Intersect(a.Availability, l.Availability).Hours()
}

// ScoreAll evaluates the full cartesian product and returns every positive
// candidate in (adviser, learner) input order. This is the O(N*M) step;
// the intersection cache keeps repeated schedule comparisons cheap.
func (s *Scorer) ScoreAll(advisers []Adviser, learners []Learner) []PairScore {
	var out []PairScore
	for _, a := range advisers {
		for _, l := range learners {
			if ps, ok := s.Score(a, l); ok {
				out = append(out, ps)
			}
		}
	}
	return out
}

func containsTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
