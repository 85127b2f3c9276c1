package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse_ClockRanges(t *testing.T) {
	got := Parse("Mon 14:00-16:00")
	assert.Equal(t, Schedule{time.Monday: {{Start: 1400, End: 1600}}}, got)

	got = Parse("Monday 1400-1600")
	assert.Equal(t, Schedule{time.Monday: {{Start: 1400, End: 1600}}}, got)

	got = Parse("fri 9:00-11:30")
	assert.Equal(t, Schedule{time.Friday: {{Start: 900, End: 1130}}}, got)
}

func TestParse_PeriodTokens(t *testing.T) {
	got := Parse("Tuesday Morning; Wed afternoon; thu Evening")
	assert.Equal(t, Schedule{
		time.Tuesday:   {{Start: 800, End: 1200}},
		time.Wednesday: {{Start: 1200, End: 1700}},
		time.Thursday:  {{Start: 1700, End: 2100}},
	}, got)
}

func TestParse_MultipleBlocksPerDay(t *testing.T) {
	got := Parse("Mon 09:00-11:00, 14:00-16:00")
	assert.Equal(t, []Block{{Start: 900, End: 1100}, {Start: 1400, End: 1600}}, got[time.Monday])
}

func TestParse_MultipleEntries(t *testing.T) {
	got := Parse("Mon 14:00-16:00; Tue Morning\nWed 17:00-19:00")
	assert.Len(t, got, 3)
	assert.Equal(t, []Block{{Start: 1700, End: 1900}}, got[time.Wednesday])
}

func TestParse_UnrecognizedTextYieldsEmpty(t *testing.T) {
	// Malformed input is never an error; it just contributes no
	// availability.
	cases := []string{
		"",
		"whenever works",
		"Mon",
		"Someday 14:00-16:00",
		"Mon 16:00-14:00", // inverted range
		"Mon 25:00-26:00", // invalid clock
		"Mon 14:61-16:00", // invalid minutes
	}
	for _, raw := range cases {
		assert.True(t, Parse(raw).IsEmpty(), "input %q", raw)
	}
}

func TestParse_SalvagesValidEntriesAmongGarbage(t *testing.T) {
	got := Parse("no idea; Mon 14:00-16:00; ???")
	assert.Equal(t, Schedule{time.Monday: {{Start: 1400, End: 1600}}}, got)
}
