package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlock_Hours(t *testing.T) {
	assert.Equal(t, 2.0, Block{Start: 1400, End: 1600}.Hours())
	assert.InDelta(t, 1.5, Block{Start: 930, End: 1100}.Hours(), 0.001)
	assert.InDelta(t, 0.5, Block{Start: 1030, End: 1100}.Hours(), 0.001)
}

func TestSchedule_Hours_RoundsToOneDecimal(t *testing.T) {
	s := Schedule{
		time.Monday: {{Start: 900, End: 950}}, // 50 minutes = 0.8333...
	}
	assert.Equal(t, 0.8, s.Hours())
}

func TestSchedule_Hours_SumsAcrossDays(t *testing.T) {
	s := Schedule{
		time.Monday:  {{Start: 1400, End: 1600}},
		time.Tuesday: {{Start: 900, End: 1000}, {Start: 1100, End: 1130}},
	}
	assert.Equal(t, 3.5, s.Hours())
}

func TestIntersect_Basic(t *testing.T) {
	a := Schedule{time.Monday: {{Start: 1400, End: 1600}}}
	b := Schedule{time.Monday: {{Start: 1300, End: 1500}}}

	got := Intersect(a, b)
	assert.Equal(t, Schedule{time.Monday: {{Start: 1400, End: 1500}}}, got)
	assert.Equal(t, 1.0, got.Hours())
}

func TestIntersect_Symmetric(t *testing.T) {
	a := Schedule{
		time.Monday:    {{Start: 900, End: 1200}, {Start: 1400, End: 1800}},
		time.Wednesday: {{Start: 1700, End: 2100}},
	}
	b := Schedule{
		time.Monday:    {{Start: 1000, End: 1500}},
		time.Wednesday: {{Start: 1600, End: 1900}},
		time.Friday:    {{Start: 900, End: 1700}},
	}

	assert.Equal(t, Intersect(a, b), Intersect(b, a))
}

func TestIntersect_DisjointDays(t *testing.T) {
	a := Schedule{time.Monday: {{Start: 900, End: 1700}}}
	b := Schedule{time.Tuesday: {{Start: 900, End: 1700}}}

	got := Intersect(a, b)
	assert.Empty(t, got)
	assert.True(t, got.IsEmpty())
}

func TestIntersect_TouchingBlocksDoNotOverlap(t *testing.T) {
	// Half-open intervals: [9,12) and [12,17) share no time.
	a := Schedule{time.Monday: {{Start: 900, End: 1200}}}
	b := Schedule{time.Monday: {{Start: 1200, End: 1700}}}

	assert.True(t, Intersect(a, b).IsEmpty())
}

func TestIntersect_UnsortedOverlappingInput(t *testing.T) {
	// Input blocks are neither sorted nor disjoint; the routine must still
	// produce correct, sorted output.
	a := Schedule{time.Monday: {{Start: 1500, End: 1700}, {Start: 900, End: 1100}}}
	b := Schedule{time.Monday: {{Start: 800, End: 1600}, {Start: 1000, End: 1030}}}

	got := Intersect(a, b)
	assert.Equal(t, []Block{
		{Start: 900, End: 1100},
		{Start: 1000, End: 1030},
		{Start: 1500, End: 1600},
	}, got[time.Monday])
}

func TestSchedule_Key_CanonicalAcrossBlockOrder(t *testing.T) {
	a := Schedule{time.Monday: {{Start: 900, End: 1100}, {Start: 1400, End: 1600}}}
	b := Schedule{time.Monday: {{Start: 1400, End: 1600}, {Start: 900, End: 1100}}}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), Schedule{time.Tuesday: {{Start: 900, End: 1100}}}.Key())
}

func TestSchedule_Key_EmptyDaysIgnored(t *testing.T) {
	a := Schedule{}
	b := Schedule{time.Monday: {}}

	assert.Equal(t, a.Key(), b.Key())
}

func TestCache_MemoizesSymmetrically(t *testing.T) {
	cache := NewCache()

	a := Schedule{time.Monday: {{Start: 1400, End: 1600}}}
	b := Schedule{time.Monday: {{Start: 1300, End: 1500}}}

	first := cache.Intersect(a, b)
	second := cache.Intersect(b, a)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())

	c := Schedule{time.Tuesday: {{Start: 900, End: 1000}}}
	cache.Intersect(a, c)
	assert.Equal(t, 2, cache.Len())
}
