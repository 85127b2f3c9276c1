package match

import "sort"

// GreedySolver commits candidate pairs first-fit in descending score
// order. It is a greedy approximation to maximum-weight bipartite
// matching: it never backtracks and is not guaranteed optimal. Downstream
// re-assignment tooling relies on the result being predictable rather
// than optimal, so this is a documented limitation, not a bug to fix.
type GreedySolver struct{}

// NewGreedySolver returns the score-sorted first-fit strategy.
func NewGreedySolver() *GreedySolver {
	return &GreedySolver{}
}

// Solve sorts the candidates by score descending with a stable sort (ties
// keep candidate input order, so the result is deterministic for a fixed
// input) and walks the list once, committing every pair whose adviser and
// learner are both still free. The walk always runs to the end of the
// list, even once one side is saturated, which keeps the behaviour
// independent of population-size asymmetry.
//
// An empty candidate list yields an empty assignment with both
// populations fully unassigned; that is a valid degenerate outcome, not
// an error.
func (g *GreedySolver) Solve(advisers []Adviser, learners []Learner, candidates []PairScore) Assignment {
	sorted := make([]PairScore, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	usedAdvisers := make(map[string]bool, len(advisers))
	usedLearners := make(map[string]bool, len(learners))
	pairs := make([]Pair, 0, min(len(advisers), len(learners)))

	for _, c := range sorted {
		if usedAdvisers[c.AdviserID] || usedLearners[c.LearnerID] {
			continue
		}
		pairs = append(pairs, Pair{AdviserID: c.AdviserID, LearnerID: c.LearnerID, Score: c.Score})
		usedAdvisers[c.AdviserID] = true
		usedLearners[c.LearnerID] = true
	}

	ua, ul := unassignedIDs(advisers, learners, usedAdvisers, usedLearners)
	return Assignment{Pairs: pairs, UnassignedAdviserIDs: ua, UnassignedLearnerIDs: ul}
}
