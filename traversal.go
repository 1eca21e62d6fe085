package skiplist

import "fmt"

// findPredecessors locates, for each level from the current highest down to
// 0, the rightmost node whose key orders strictly before key. The stops are
// recorded into update when it is non-nil (it must then have capacity for
// every level up to the configured maximum, since insertion may activate
// levels above the current highest). The returned node is the level-0
// successor of the final stop: the only candidate whose key may equal key.
func (l *SkipList[K, V]) findPredecessors(key K, update []*node[K, V]) *node[K, V] {
	x := l.head
	for level := l.highest; level >= 0; level-- {
		for l.nodeBeforeKey(x.forward[level], key) {
			x = x.forward[level]
		}
		if l.checkInvariants {
			l.assertOrdered(x, key, level)
		}
		if update != nil {
			update[level] = x
		}
	}
	return x.forward[0]
}

// assertOrdered panics unless the traversal stop brackets the key:
// stop < key <= stop.forward[level]. Either side failing means the supplied
// comparison is not a strict weak ordering, or the per-level chains are
// corrupt.
func (l *SkipList[K, V]) assertOrdered(x *node[K, V], key K, level int) {
	if !l.nodeBeforeKey(x, key) {
		panic(fmt.Sprintf("skiplist: predecessor at level %d does not order before the target key", level))
	}
	next := x.forward[level]
	if l.nodeBeforeKey(next, key) {
		panic(fmt.Sprintf("skiplist: successor at level %d orders before the target key", level))
	}
}
