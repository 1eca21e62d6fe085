package skiplist

import randv2 "math/rand/v2"

// float64Unit converts the top 53 bits of a Uint64 draw into [0, 1).
const float64Unit = 1.0 / (1 << 53)

// levelSource draws geometrically distributed node levels: starting at
// level 0, a fair coin is flipped and the level raised while it comes up
// heads, capped at maxLevel-1. For p = 0.5 this yields
// P(level = h) = 2^-(h+1) below the cap, with the cap absorbing the tail.
type levelSource struct {
	src      randv2.Source
	maxLevel int
	p        float64
}

func newLevelSource(cfg Config) *levelSource {
	src := cfg.source
	if src == nil {
		src = randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
	}
	return &levelSource{
		src:      src,
		maxLevel: cfg.maxLevel,
		p:        cfg.probability,
	}
}

func (s *levelSource) float64() float64 {
	return float64(s.src.Uint64()>>11) * float64Unit
}

// nextLevel returns the level for a new node, in [0, maxLevel).
func (s *levelSource) nextLevel() int {
	level := 0
	for level < s.maxLevel-1 && s.float64() < s.p {
		level++
	}
	return level
}
