// Package skiplist provides a generic ordered map implemented as a
// probabilistically balanced skip list. It supports point lookup,
// insert/update, delete, bulk clear, and ordered forward iteration with
// amortized logarithmic expected cost, without tree rotations.
//
// The container is single-threaded: no operation may be called concurrently
// with a mutating operation on the same list.
package skiplist

import "cmp"

// SkipList is a generic ordered map from unique keys to values. The zero
// value is not usable; construct lists with New or NewFunc.
type SkipList[K, V any] struct {
	less    LessFunc[K]
	head    *node[K, V]
	tail    *node[K, V]
	highest int
	length  int
	rng     *levelSource

	checkInvariants bool
}

// New returns an empty list ordered by the natural ordering of K.
func New[K cmp.Ordered, V any](opts ...Option) *SkipList[K, V] {
	return NewFunc[K, V](cmp.Less[K], opts...)
}

// NewFunc returns an empty list ordered by the supplied less relation. The
// relation must be a strict weak ordering; two keys are considered the same
// when neither orders before the other.
func NewFunc[K, V any](less LessFunc[K], opts ...Option) *SkipList[K, V] {
	if less == nil {
		panic("skiplist: nil less function")
	}
	cfg := NewConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	head, tail := newSentinels[K, V](cfg.maxLevel)
	return &SkipList[K, V]{
		less:            less,
		head:            head,
		tail:            tail,
		rng:             newLevelSource(cfg),
		checkInvariants: cfg.checkInvariants,
	}
}

// Insert stores value under key, overwriting the value in place if the key
// is already present. Key identity never changes after first insertion: an
// update keeps the existing node and its position.
func (l *SkipList[K, V]) Insert(key K, value V) {
	update := make([]*node[K, V], l.rng.maxLevel)
	candidate := l.findPredecessors(key, update)

	if l.keyEqualsNode(key, candidate) {
		candidate.value = value
		return
	}

	level := l.rng.nextLevel()
	if level > l.highest {
		// Levels above the previous highest have no predecessor yet; the
		// head stands in for them.
		for lv := l.highest + 1; lv <= level; lv++ {
			update[lv] = l.head
		}
		l.highest = level
	}

	n := newNode(key, value, level+1)
	for lv := 0; lv <= level; lv++ {
		// Read the predecessor's link before overwriting it.
		n.forward[lv] = update[lv].forward[lv]
		update[lv].forward[lv] = n
	}
	l.length++
}

// Search returns an iterator positioned at key, or the end iterator when the
// key is absent. It never mutates the list.
func (l *SkipList[K, V]) Search(key K) Iterator[K, V] {
	candidate := l.findPredecessors(key, nil)
	if l.keyEqualsNode(key, candidate) {
		return Iterator[K, V]{n: candidate}
	}
	return l.End()
}

// Get returns the value stored under key and whether the key is present.
func (l *SkipList[K, V]) Get(key K) (V, bool) {
	candidate := l.findPredecessors(key, nil)
	if l.keyEqualsNode(key, candidate) {
		return candidate.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (l *SkipList[K, V]) Contains(key K) bool {
	return l.keyEqualsNode(key, l.findPredecessors(key, nil))
}

// Delete removes key and returns the number of removed elements: 1 when the
// key was present, 0 otherwise.
func (l *SkipList[K, V]) Delete(key K) int {
	update := make([]*node[K, V], l.rng.maxLevel)
	candidate := l.findPredecessors(key, update)

	if !l.keyEqualsNode(key, candidate) {
		return 0
	}

	// Splice the node out of every lane that reaches it. The first level
	// whose predecessor does not link to the node bounds its height.
	for lv := 0; lv <= l.highest; lv++ {
		if update[lv].forward[lv] != candidate {
			break
		}
		update[lv].forward[lv] = candidate.forward[lv]
	}
	candidate.forward = nil

	// Drop empty levels so traversals never start above the occupied ones.
	for l.highest > 0 && l.head.forward[l.highest] == l.tail {
		l.highest--
	}

	l.length--
	return 1
}

// Clear removes every element, resetting the list to its freshly
// constructed state. The sentinels and the random source are retained.
func (l *SkipList[K, V]) Clear() {
	x := l.head.forward[0]
	for x != l.tail {
		next := x.forward[0]
		x.forward = nil
		x = next
	}
	for i := range l.head.forward {
		l.head.forward[i] = l.tail
	}
	l.highest = 0
	l.length = 0
}

// Len returns the number of elements currently stored. Sentinels are never
// counted.
func (l *SkipList[K, V]) Len() int {
	return l.length
}
