// Package report renders an assignment and its unassigned sets for human
// consumption.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hartfield-tutoring/adviser-match/pkg/core/match"
)

// WriteAssignmentCSV writes the committed pairs as CSV.
func WriteAssignmentCSV(w io.Writer, a match.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"adviser_id", "learner_id", "score"}); err != nil {
		return err
	}
	for _, p := range a.Pairs {
		record := []string{p.AdviserID, p.LearnerID, strconv.FormatFloat(p.Score, 'f', 2, 64)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteUnassignedCSV writes the unassigned ids of both populations as CSV.
func WriteUnassignedCSV(w io.Writer, a match.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"role", "id"}); err != nil {
		return err
	}
	for _, id := range a.UnassignedAdviserIDs {
		if err := cw.Write([]string{"adviser", id}); err != nil {
			return err
		}
	}
	for _, id := range a.UnassignedLearnerIDs {
		if err := cw.Write([]string{"learner", id}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFiles writes both CSVs into dir, named by the run id, and returns
// the paths written.
func WriteFiles(dir, runID string, a match.Assignment) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	assignmentPath := filepath.Join(dir, fmt.Sprintf("assignments_%s.csv", runID))
	unassignedPath := filepath.Join(dir, fmt.Sprintf("unassigned_%s.csv", runID))

	af, err := os.Create(assignmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", assignmentPath, err)
	}
	defer af.Close()
	if err := WriteAssignmentCSV(af, a); err != nil {
		return nil, fmt.Errorf("failed to write assignments: %w", err)
	}

	uf, err := os.Create(unassignedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", unassignedPath, err)
	}
	defer uf.Close()
	if err := WriteUnassignedCSV(uf, a); err != nil {
		return nil, fmt.Errorf("failed to write unassigned: %w", err)
	}

	return []string{assignmentPath, unassignedPath}, nil
}

// Summary renders a short human-readable digest of a run. loads and
// primaryHours come from the phased solver and may be nil/zero for the
// greedy one.
func Summary(a match.Assignment, loads map[string]int, primaryHours float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Pairs assigned:      %d\n", len(a.Pairs))
	fmt.Fprintf(&sb, "Unassigned advisers: %d\n", len(a.UnassignedAdviserIDs))
	fmt.Fprintf(&sb, "Unassigned learners: %d\n", len(a.UnassignedLearnerIDs))

	if len(a.Pairs) > 0 {
		fmt.Fprintf(&sb, "Mean pair score:     %.2f\n", a.TotalScore()/float64(len(a.Pairs)))
	}
	if primaryHours > 0 {
		fmt.Fprintf(&sb, "Primary-pass hours:  %.1f\n", primaryHours)
	}

	if len(loads) > 0 {
		ids := make([]string, 0, len(loads))
		for id := range loads {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		sb.WriteString("Adviser loads:\n")
		for _, id := range ids {
			fmt.Fprintf(&sb, "  %s: %d\n", id, loads[id])
		}
	}

	return sb.String()
}
