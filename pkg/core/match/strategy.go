package match

// Strategy produces an assignment from two populations and the candidate
// pairs between them. The two implementations are deliberately different
// policies consumed by different workflows; callers select one, they are
// never merged.
type Strategy interface {
	Solve(advisers []Adviser, learners []Learner, candidates []PairScore) Assignment
}
