package skiplist

// LessFunc reports whether a orders strictly before b. It must implement a
// strict weak ordering; equality is derived from it as !(a<b) && !(b<a), so
// key types never need a separate equality operation.
type LessFunc[K any] func(a, b K) bool

// nodeBeforeKey reports whether n orders strictly before key. The boundary
// tags are consulted first so sentinel comparisons never reach the user
// relation: the head is below every key, the tail above every key.
func (l *SkipList[K, V]) nodeBeforeKey(n *node[K, V], key K) bool {
	switch n.bound {
	case boundaryHead:
		return true
	case boundaryTail:
		return false
	}
	return l.less(n.key, key)
}

// keyBeforeNode reports whether key orders strictly before n.
func (l *SkipList[K, V]) keyBeforeNode(key K, n *node[K, V]) bool {
	switch n.bound {
	case boundaryHead:
		return false
	case boundaryTail:
		return true
	}
	return l.less(key, n.key)
}

// keyEqualsNode reports whether key and n's key are equivalent under the
// list's ordering. Sentinels are never equivalent to a real key.
func (l *SkipList[K, V]) keyEqualsNode(key K, n *node[K, V]) bool {
	return !l.nodeBeforeKey(n, key) && !l.keyBeforeNode(key, n)
}
