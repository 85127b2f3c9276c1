package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Symbolic period tokens and the fixed clock ranges they map to.
var periods = map[string]Block{
	"morning":   {Start: 800, End: 1200},
	"afternoon": {Start: 1200, End: 1700},
	"evening":   {Start: 1700, End: 2100},
}

var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"tues":      time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"thurs":     time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// Parse converts free-text availability into a Schedule. Entries are
// separated by ";" or newlines; each entry names a day followed by one or
// more comma-separated blocks:
//
//	Mon 14:00-16:00
//	Tuesday Morning
//	wed 0900-1100, 13:00-15:00
//
// Unrecognized or empty text yields no availability for that entry, never
// an error. Absence of availability is a valid state, not a failure; the
// ingestion layer owns surfacing data-quality warnings.
func Parse(raw string) Schedule {
	s := Schedule{}
	for _, entry := range splitEntries(raw) {
		day, rest, ok := splitDay(entry)
		if !ok {
			continue
		}
		for _, tok := range strings.Split(rest, ",") {
			if b, ok := parseBlock(tok); ok {
				s[day] = append(s[day], b)
			}
		}
	}
	return s
}

func splitEntries(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == '\n'
	})
}

func splitDay(entry string) (time.Weekday, string, bool) {
	fields := strings.Fields(strings.TrimSpace(entry))
	if len(fields) < 2 {
		return 0, "", false
	}
	day, ok := dayNames[strings.ToLower(fields[0])]
	if !ok {
		return 0, "", false
	}
	return day, strings.Join(fields[1:], " "), true
}

func parseBlock(tok string) (Block, bool) {
	tok = strings.ToLower(strings.TrimSpace(tok))
	if b, ok := periods[tok]; ok {
		return b, true
	}
	start, end, ok := strings.Cut(tok, "-")
	if !ok {
		return Block{}, false
	}
	s, okS := parseClock(start)
	e, okE := parseClock(end)
	if !okS || !okE || s >= e {
		return Block{}, false
	}
	return Block{Start: s, End: e}, true
}

// parseClock accepts "HH:MM", "HHMM" and "HMM" forms, returning the HHMM
// integer encoding.
func parseClock(s string) (int, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ":", "")
	if len(s) < 3 || len(s) > 4 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if n/100 > 23 || n%100 > 59 {
		return 0, false
	}
	return n, true
}
