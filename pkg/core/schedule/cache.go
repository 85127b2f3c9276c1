package schedule

// Cache memoizes intersections. One person's schedule participates in many
// candidate pairs during the pairwise scoring pass, and the same pair is
// queried again for diagnostics, so results are keyed by the canonical
// encodings of both inputs. A Cache is scoped to a single solver run;
// construct a fresh one per run rather than sharing a process-wide
// instance.
type Cache struct {
	entries map[string]Schedule
}

// NewCache returns an empty intersection cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Schedule)}
}

// Intersect returns the memoized intersection of a and b. The two operand
// keys are ordered lexicographically before joining, so Intersect(a, b)
// and Intersect(b, a) share one entry.
func (c *Cache) Intersect(a, b Schedule) Schedule {
	ka, kb := a.Key(), b.Key()
	if kb < ka {
		ka, kb = kb, ka
	}
	key := ka + "|" + kb
	if cached, ok := c.entries[key]; ok {
		return cached
	}
	result := Intersect(a, b)
	c.entries[key] = result
	return result
}

// Len returns the number of distinct intersections computed so far.
func (c *Cache) Len() int {
	return len(c.entries)
}
