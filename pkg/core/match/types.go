// Package match scores adviser/learner compatibility and assigns the two
// populations to each other one-to-one.
package match

import (
	"strings"

	"github.com/hartfield-tutoring/adviser-match/pkg/core/schedule"
)

// LanguageLevel is an ordered secondary-language proficiency category.
type LanguageLevel int

const (
	LanguageNone LanguageLevel = iota
	LanguageBasic
	LanguageIntermediate
	LanguageAdvanced
	LanguageNative
)

var languageNames = [...]string{"none", "basic", "intermediate", "advanced", "native"}

func (l LanguageLevel) String() string {
	if l < LanguageNone || int(l) >= len(languageNames) {
		return "none"
	}
	return languageNames[l]
}

// ParseLanguageLevel maps free-text proficiency to a level. Unrecognized
// text means no stated ability, not an error.
func ParseLanguageLevel(s string) LanguageLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "beginner":
		return LanguageBasic
	case "intermediate":
		return LanguageIntermediate
	case "advanced", "fluent":
		return LanguageAdvanced
	case "native":
		return LanguageNative
	default:
		return LanguageNone
	}
}

// Adviser offers weekly availability, a set of topics it can cover and the
// learner levels it will accept. IDs are opaque strings; the engine never
// interprets their structure.
type Adviser struct {
	ID             string
	Name           string
	Availability   schedule.Schedule
	Language       LanguageLevel
	EligibleLevels []string
	Topics         []string
}

// EligibleFor reports whether the adviser accepts learners at the given
// level.
func (a Adviser) EligibleFor(level string) bool {
	for _, l := range a.EligibleLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Learner has weekly availability, a single required level and topics in
// preference order, earlier meaning higher priority.
type Learner struct {
	ID           string
	Name         string
	Availability schedule.Schedule
	Language     LanguageLevel
	Level        string
	Topics       []string
}

// PairScore is a candidate pairing that passed every hard compatibility
// gate with a positive score.
type PairScore struct {
	AdviserID   string
	LearnerID   string
	Score       float64
	SharedTopic string
}

// Pair is one committed adviser/learner pairing.
type Pair struct {
	AdviserID string
	LearnerID string
	Score     float64
}

// Assignment is the solver output. Every learner id appears in at most one
// pair. The greedy solver also commits each adviser at most once; the
// phased solver may give one adviser several learners in its shared
// passes. The unassigned sets are the difference against the input
// populations, reported in input order, so assigned and unassigned ids
// together always cover each input exactly.
type Assignment struct {
	Pairs                []Pair
	UnassignedAdviserIDs []string
	UnassignedLearnerIDs []string
}

// TotalScore sums the committed pair scores.
func (a Assignment) TotalScore() float64 {
	total := 0.0
	for _, p := range a.Pairs {
		total += p.Score
	}
	return total
}

func unassignedIDs(advisers []Adviser, learners []Learner, usedAdvisers, usedLearners map[string]bool) ([]string, []string) {
	ua := make([]string, 0, len(advisers))
	for _, a := range advisers {
		if !usedAdvisers[a.ID] {
			ua = append(ua, a.ID)
		}
	}
	ul := make([]string, 0, len(learners))
	for _, l := range learners {
		if !usedLearners[l.ID] {
			ul = append(ul, l.ID)
		}
	}
	return ua, ul
}
