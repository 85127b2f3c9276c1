// Package ingest reads adviser and learner rosters from CSV files and
// converts them into the typed shapes the engine consumes. The engine
// never sees untyped tabular data; every boundary check lives here.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hartfield-tutoring/adviser-match/pkg/core/match"
	"github.com/hartfield-tutoring/adviser-match/pkg/core/schedule"
)

// ErrDuplicateID is returned when one roster contains the same id twice.
// The engine assumes id uniqueness as a precondition, so duplicates are
// rejected here rather than passed through.
var ErrDuplicateID = errors.New("duplicate id")

// ListSeparator splits multi-valued cells (topics, eligible levels).
const ListSeparator = "|"

// Expected column names in the adviser roster.
var adviserFields = []string{
	"id",
	"name",
	"language",
	"eligible_levels",
	"topics",
	"availability",
}

// Expected column names in the learner roster.
var learnerFields = []string{
	"id",
	"name",
	"language",
	"level",
	"topics",
	"availability",
}

var validate = validator.New()

type adviserRow struct {
	ID             string `validate:"required"`
	EligibleLevels string `validate:"required"`
	Topics         string `validate:"required"`
}

type learnerRow struct {
	ID     string `validate:"required"`
	Level  string `validate:"required"`
	Topics string `validate:"required"`
}

// ReadAdvisers loads the adviser roster from path. Rows that fail
// validation are skipped with a warning; unparseable availability degrades
// to no availability with a warning. Both policies keep the pipeline
// moving so a single bad row never sinks a run.
func ReadAdvisers(path string) ([]match.Adviser, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open adviser roster: %w", err)
	}
	defer f.Close()

	return ParseAdvisers(f)
}

// ReadLearners loads the learner roster from path with the same policies
// as ReadAdvisers.
func ReadLearners(path string) ([]match.Learner, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open learner roster: %w", err)
	}
	defer f.Close()

	return ParseLearners(f)
}

// ParseAdvisers converts CSV data into advisers plus data-quality
// warnings.
func ParseAdvisers(r io.Reader) ([]match.Adviser, []string, error) {
	rows, getField, err := readTable(r, adviserFields)
	if err != nil {
		return nil, nil, err
	}

	var advisers []match.Adviser
	var warnings []string
	seen := make(map[string]bool)

	for i, row := range rows {
		line := i + 2 // 1-based, after the header row

		rec := adviserRow{
			ID:             getField("id", row),
			EligibleLevels: getField("eligible_levels", row),
			Topics:         getField("topics", row),
		}
		if err := validate.Struct(rec); err != nil {
			warnings = append(warnings, fmt.Sprintf("adviser row %d skipped: %v", line, err))
			continue
		}
		if seen[rec.ID] {
			return nil, nil, fmt.Errorf("adviser roster row %d: %w: %s", line, ErrDuplicateID, rec.ID)
		}
		seen[rec.ID] = true

		availabilityText := getField("availability", row)
		availability := schedule.Parse(availabilityText)
		if availability.IsEmpty() {
			warnings = append(warnings, fmt.Sprintf("adviser %s has no recognizable availability: %q", rec.ID, availabilityText))
		}

		advisers = append(advisers, match.Adviser{
			ID:             rec.ID,
			Name:           getField("name", row),
			Availability:   availability,
			Language:       match.ParseLanguageLevel(getField("language", row)),
			EligibleLevels: splitList(rec.EligibleLevels),
			Topics:         splitList(rec.Topics),
		})
	}

	return advisers, warnings, nil
}

// ParseLearners converts CSV data into learners plus data-quality
// warnings.
func ParseLearners(r io.Reader) ([]match.Learner, []string, error) {
	rows, getField, err := readTable(r, learnerFields)
	if err != nil {
		return nil, nil, err
	}

	var learners []match.Learner
	var warnings []string
	seen := make(map[string]bool)

	for i, row := range rows {
		line := i + 2

		rec := learnerRow{
			ID:     getField("id", row),
			Level:  getField("level", row),
			Topics: getField("topics", row),
		}
		if err := validate.Struct(rec); err != nil {
			warnings = append(warnings, fmt.Sprintf("learner row %d skipped: %v", line, err))
			continue
		}
		if seen[rec.ID] {
			return nil, nil, fmt.Errorf("learner roster row %d: %w: %s", line, ErrDuplicateID, rec.ID)
		}
		seen[rec.ID] = true

		availabilityText := getField("availability", row)
		availability := schedule.Parse(availabilityText)
		if availability.IsEmpty() {
			warnings = append(warnings, fmt.Sprintf("learner %s has no recognizable availability: %q", rec.ID, availabilityText))
		}

		learners = append(learners, match.Learner{
			ID:           rec.ID,
			Name:         getField("name", row),
			Availability: availability,
			Language:     match.ParseLanguageLevel(getField("language", row)),
			Level:        strings.TrimSpace(rec.Level),
			Topics:       splitList(rec.Topics),
		})
	}

	return learners, warnings, nil
}

// readTable reads all CSV records, locates the required columns in the
// header row and returns the data rows plus a field accessor.
func readTable(r io.Reader, fields []string) ([][]string, func(string, []string) string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled by the accessor

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("no header row found")
	}

	fieldIndexes := make(map[string]int, len(fields))
	header := records[0]
	for _, field := range fields {
		index := -1
		for i, cell := range header {
			if strings.EqualFold(strings.TrimSpace(cell), field) {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, nil, fmt.Errorf("missing required column in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	getField := func(field string, row []string) string {
		index, ok := fieldIndexes[field]
		if !ok || index >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[index])
	}

	return records[1:], getField, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ListSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
