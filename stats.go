package skiplist

// Stats describes the shape of the list at a point in time.
type Stats struct {
	// Len is the number of stored elements.
	Len int

	// MaxLevel is the configured level cap.
	MaxLevel int

	// Highest is the highest level currently occupied by any node
	// (0 when the list is empty).
	Highest int

	// PerLevel holds, for each level up to Highest, the number of nodes
	// linked into that lane.
	PerLevel []int
}

// Stats walks every lane and returns occupancy counts. It is intended for
// diagnostics and benchmarks, not hot paths: the walk costs O(n) on the
// base lane alone.
func (l *SkipList[K, V]) Stats() Stats {
	s := Stats{
		Len:      l.length,
		MaxLevel: l.rng.maxLevel,
		Highest:  l.highest,
		PerLevel: make([]int, l.highest+1),
	}
	for level := 0; level <= l.highest; level++ {
		for x := l.head.forward[level]; x != l.tail; x = x.forward[level] {
			s.PerLevel[level]++
		}
	}
	return s
}
