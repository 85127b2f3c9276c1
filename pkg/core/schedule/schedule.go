// Package schedule models weekly availability as day-of-week time blocks
// and computes overlap between two people's schedules.
package schedule

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Block is a half-open time interval [Start, End) within a single day,
// encoded as HHMM integers (1430 = 2:30pm).
type Block struct {
	Start int
	End   int
}

// Hours returns the block duration in fractional hours.
func (b Block) Hours() float64 {
	return clockHours(b.End) - clockHours(b.Start)
}

func (b Block) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", b.Start/100, b.Start%100, b.End/100, b.End%100)
}

func clockHours(hhmm int) float64 {
	return float64(hhmm/100) + float64(hhmm%100)/60
}

// Schedule maps a weekday to the time blocks a person is available.
// Blocks are not required to be sorted or disjoint; every operation must
// behave correctly regardless.
type Schedule map[time.Weekday][]Block

// IsEmpty reports whether the schedule contains no blocks at all.
func (s Schedule) IsEmpty() bool {
	for _, blocks := range s {
		if len(blocks) > 0 {
			return false
		}
	}
	return true
}

// Hours returns the total duration over all blocks in fractional hours,
// rounded to 1 decimal place.
func (s Schedule) Hours() float64 {
	total := 0.0
	for _, blocks := range s {
		for _, b := range blocks {
			total += b.Hours()
		}
	}
	return math.Round(total*10) / 10
}

// Intersect computes the overlap between two schedules. For each weekday
// present in both, every block pair is intersected: max(start) < min(end)
// means they overlap on [max(start), min(end)). Days absent from either
// side contribute nothing. Symmetric; the result may be empty.
func Intersect(a, b Schedule) Schedule {
	out := Schedule{}
	for day, aBlocks := range a {
		bBlocks, ok := b[day]
		if !ok {
			continue
		}
		var overlap []Block
		for _, ab := range aBlocks {
			for _, bb := range bBlocks {
				start := max(ab.Start, bb.Start)
				end := min(ab.End, bb.End)
				if start < end {
					overlap = append(overlap, Block{Start: start, End: end})
				}
			}
		}
		if len(overlap) > 0 {
			sortBlocks(overlap)
			out[day] = overlap
		}
	}
	return out
}

func sortBlocks(blocks []Block) {
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Start != blocks[j].Start {
			return blocks[i].Start < blocks[j].Start
		}
		return blocks[i].End < blocks[j].End
	})
}

// Key returns a canonical encoding of the schedule: weekdays in calendar
// order, blocks sorted within each day. Two schedules describing the same
// availability always produce the same key, so it is safe to memoize on.
func (s Schedule) Key() string {
	var sb strings.Builder
	for day := time.Sunday; day <= time.Saturday; day++ {
		blocks := s[day]
		if len(blocks) == 0 {
			continue
		}
		sorted := make([]Block, len(blocks))
		copy(sorted, blocks)
		sortBlocks(sorted)
		fmt.Fprintf(&sb, "%d:", int(day))
		for _, b := range sorted {
			fmt.Fprintf(&sb, "%04d-%04d,", b.Start, b.End)
		}
		sb.WriteByte(';')
	}
	return sb.String()
}

func (s Schedule) String() string {
	var parts []string
	for day := time.Sunday; day <= time.Saturday; day++ {
		blocks := s[day]
		if len(blocks) == 0 {
			continue
		}
		sorted := make([]Block, len(blocks))
		copy(sorted, blocks)
		sortBlocks(sorted)
		strs := make([]string, len(sorted))
		for i, b := range sorted {
			strs[i] = b.String()
		}
		parts = append(parts, fmt.Sprintf("%s %s", day, strings.Join(strs, ",")))
	}
	return strings.Join(parts, "; ")
}
