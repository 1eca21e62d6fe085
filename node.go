package skiplist

// boundary tags the two synthetic nodes that bracket the list. Tagged keys
// keep sentinel comparisons total and explicit: the head orders before every
// real key and the tail after every real key, regardless of what the zero
// value of K would compare as.
type boundary int8

const (
	boundaryNone boundary = iota
	boundaryHead
	boundaryTail
)

// node holds one key/value pair and one forward link per level it
// participates in. forward[0] is the base lane that contains every node;
// len(forward) is the node's height. A node linked at level L is linked at
// every level below L as well.
type node[K, V any] struct {
	key     K
	value   V
	bound   boundary
	forward []*node[K, V]
}

func newNode[K, V any](key K, value V, height int) *node[K, V] {
	return &node[K, V]{
		key:     key,
		value:   value,
		forward: make([]*node[K, V], height),
	}
}

// newSentinels allocates the head and tail nodes. The head participates in
// every level up to maxLevel with all lanes initially pointing at the tail;
// the tail carries no forward links and terminates every lane.
func newSentinels[K, V any](maxLevel int) (head, tail *node[K, V]) {
	tail = &node[K, V]{bound: boundaryTail}
	head = &node[K, V]{
		bound:   boundaryHead,
		forward: make([]*node[K, V], maxLevel),
	}
	for i := range head.forward {
		head.forward[i] = tail
	}
	return head, tail
}
