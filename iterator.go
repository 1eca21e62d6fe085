package skiplist

import "iter"

// Iterator is a forward-only cursor over the list's base lane. Iterators are
// comparable values: two iterators are equal exactly when they reference the
// same node, so a loop may run until it equals End(). The key at the cursor
// is immutable; mutating it would corrupt the per-level ordering.
//
// Any structural mutation of the list (Insert of a new key, Delete, Clear)
// invalidates outstanding iterators; using one afterwards is undefined.
type Iterator[K, V any] struct {
	n *node[K, V]
}

// Begin returns an iterator at the smallest element, or End() when the list
// is empty.
func (l *SkipList[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{n: l.head.forward[0]}
}

// End returns the past-the-last iterator. It does not reference an element
// and must not be advanced.
func (l *SkipList[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{n: l.tail}
}

// SeekGE returns an iterator at the first element whose key orders at or
// after key, or End() when no such element exists.
func (l *SkipList[K, V]) SeekGE(key K) Iterator[K, V] {
	return Iterator[K, V]{n: l.findPredecessors(key, nil)}
}

// Valid reports whether the iterator references an element.
func (it Iterator[K, V]) Valid() bool {
	return it.n != nil && it.n.bound == boundaryNone
}

// Key returns the key at the cursor. It must only be called when Valid
// reports true.
func (it Iterator[K, V]) Key() K {
	return it.n.key
}

// Value returns the value at the cursor. It must only be called when Valid
// reports true.
func (it Iterator[K, V]) Value() V {
	return it.n.value
}

// Next advances the cursor one element along the base lane and reports
// whether it still references an element. Advancing an exhausted iterator
// is a no-op that returns false.
func (it *Iterator[K, V]) Next() bool {
	if !it.Valid() {
		return false
	}
	it.n = it.n.forward[0]
	return it.Valid()
}

// All returns the list's elements in ascending key order for use with a
// range statement. The list must not be mutated during the iteration.
func (l *SkipList[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := l.head.forward[0]; x != l.tail; x = x.forward[0] {
			if !yield(x.key, x.value) {
				return
			}
		}
	}
}
