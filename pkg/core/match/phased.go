package match

import "math"

// PhasedSolver assigns learners in input order across up to three passes
// with decreasing overlap thresholds, balancing load across advisers
// instead of sorting candidates globally. It recomputes overlap durations
// on the fly through the scorer's shared cache; the candidate list serves
// as the set of pairs that passed the hard gates.
type PhasedSolver struct {
	scorer *Scorer
}

// NewPhasedSolver returns the threshold-first, load-balanced strategy.
func NewPhasedSolver(scorer *Scorer) *PhasedSolver {
	return &PhasedSolver{scorer: scorer}
}

// PhasedOutcome carries the assignment plus the per-run bookkeeping the
// reporter consumes: the final per-adviser load counts and the running
// total of primary-pass overlap hours (for average-quality reporting).
type PhasedOutcome struct {
	Assignment

	// Loads maps adviser id to the number of learners assigned in this
	// run. Built fresh per call; nothing leaks between invocations.
	Loads map[string]int

	// PrimaryOverlapHours is the summed overlap of pairs committed in the
	// primary pass, rounded to 1 decimal.
	PrimaryOverlapHours float64
}

type pairKey struct {
	adviserID string
	learnerID string
}

// Solve implements Strategy. Use SolveDetailed when the load map or the
// primary-pass hours are needed.
func (p *PhasedSolver) Solve(advisers []Adviser, learners []Learner, candidates []PairScore) Assignment {
	return p.SolveDetailed(advisers, learners, candidates).Assignment
}

// SolveDetailed runs the three passes.
//
// Primary pass: each unassigned learner, in input order, takes the
// candidate adviser with the longest overlap of at least two hours; ties
// go to the adviser with the lowest current load, then to input order.
// The commit is immediate, with no global sort. Secondary pass: the same
// with the threshold lowered to one hour. Advisers are never removed from
// candidacy in these passes and may receive several learners; that is why
// the load tie-break exists.
//
// Fallback pass: learners still unassigned may take an adviser that
// received no one earlier, first-fit in input order, overlap in [1, 2)
// hours, each adviser consumed by its first learner. Unlike the shared
// passes this is strictly one learner per adviser so that stragglers do
// not pile onto a marginal adviser. The asymmetry between the passes is a
// business rule, not an inconsistency.
func (p *PhasedSolver) SolveDetailed(advisers []Adviser, learners []Learner, candidates []PairScore) PhasedOutcome {
	byPair := make(map[pairKey]PairScore, len(candidates))
	for _, c := range candidates {
		byPair[pairKey{c.AdviserID, c.LearnerID}] = c
	}

	st := &phasedState{
		byPair:       byPair,
		loads:        make(map[string]int, len(advisers)),
		usedAdvisers: make(map[string]bool, len(advisers)),
		usedLearners: make(map[string]bool, len(learners)),
	}

	primaryHours := p.sharedPass(st, advisers, learners, PrimaryOverlapHours)
	p.sharedPass(st, advisers, learners, SecondaryOverlapHours)
	p.fallbackPass(st, advisers, learners)

	ua, ul := unassignedIDs(advisers, learners, st.usedAdvisers, st.usedLearners)
	return PhasedOutcome{
		Assignment: Assignment{
			Pairs:                st.pairs,
			UnassignedAdviserIDs: ua,
			UnassignedLearnerIDs: ul,
		},
		Loads:               st.loads,
		PrimaryOverlapHours: math.Round(primaryHours*10) / 10,
	}
}

type phasedState struct {
	byPair       map[pairKey]PairScore
	pairs        []Pair
	loads        map[string]int
	usedAdvisers map[string]bool
	usedLearners map[string]bool
}

func (st *phasedState) commit(a Adviser, l Learner) {
	st.pairs = append(st.pairs, Pair{
		AdviserID: a.ID,
		LearnerID: l.ID,
		Score:     st.byPair[pairKey{a.ID, l.ID}].Score,
	})
	st.usedAdvisers[a.ID] = true
	st.usedLearners[l.ID] = true
	st.loads[a.ID]++
}

// sharedPass assigns every still-unassigned learner the best adviser
// meeting the threshold, sharing advisers between learners. Returns the
// summed overlap hours of the pairs it committed.
func (p *PhasedSolver) sharedPass(st *phasedState, advisers []Adviser, learners []Learner, threshold float64) float64 {
	committedHours := 0.0
	for _, l := range learners {
		if st.usedLearners[l.ID] {
			continue
		}

		best := -1
		bestHours := 0.0
		for i, a := range advisers {
			if _, ok := st.byPair[pairKey{a.ID, l.ID}]; !ok {
				continue
			}
			hours := p.scorer.OverlapHours(a, l)
			if hours < threshold {
				continue
			}
			switch {
			case best == -1, hours > bestHours:
				best, bestHours = i, hours
			case hours == bestHours && st.loads[a.ID] < st.loads[advisers[best].ID]:
				best = i
			}
		}
		if best == -1 {
			continue
		}

		st.commit(advisers[best], l)
		committedHours += bestHours
	}
	return committedHours
}

// fallbackPass gives remaining learners one last chance against wholly
// unused advisers, first valid adviser wins, one learner per adviser.
func (p *PhasedSolver) fallbackPass(st *phasedState, advisers []Adviser, learners []Learner) {
	for _, l := range learners {
		if st.usedLearners[l.ID] {
			continue
		}
		for _, a := range advisers {
			if st.usedAdvisers[a.ID] {
				continue
			}
			if _, ok := st.byPair[pairKey{a.ID, l.ID}]; !ok {
				continue
			}
			hours := p.scorer.OverlapHours(a, l)
			if hours < SecondaryOverlapHours || hours >= PrimaryOverlapHours {
				continue
			}
			st.commit(a, l)
			break
		}
	}
}
