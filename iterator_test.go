package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorTraversesInOrder(t *testing.T) {
	l := New[int, int]()
	for _, key := range []int{5, 1, 3} {
		l.Insert(key, key*10)
	}

	var keys []int
	for it := l.Begin(); it != l.End(); it.Next() {
		require.True(t, it.Valid())
		keys = append(keys, it.Key())
		assert.Equal(t, it.Key()*10, it.Value())
	}
	assert.Equal(t, []int{1, 3, 5}, keys)
}

func TestIteratorEmptyList(t *testing.T) {
	l := New[int, string]()

	assert.Equal(t, l.End(), l.Begin())
	assert.False(t, l.Begin().Valid())
	assert.False(t, l.End().Valid())
}

func TestIteratorEqualityIsNodeIdentity(t *testing.T) {
	l := New[int, string]()
	l.Insert(1, "one")
	l.Insert(2, "two")

	assert.Equal(t, l.Search(1), l.Search(1))
	assert.NotEqual(t, l.Search(1), l.Search(2))
	assert.NotEqual(t, l.Search(1), l.End())
	assert.Equal(t, l.Search(1), l.Begin())
}

func TestIteratorNextStopsAtEnd(t *testing.T) {
	l := New[int, string]()
	l.Insert(1, "one")

	it := l.Begin()
	require.True(t, it.Valid())
	assert.False(t, it.Next(), "advancing past the last element reports exhaustion")
	assert.Equal(t, l.End(), it)
	assert.False(t, it.Next(), "an exhausted iterator stays at the end")
	assert.Equal(t, l.End(), it)
}

func TestIteratorSearchPositions(t *testing.T) {
	l := New[int, string]()
	l.Insert(1, "one")
	l.Insert(3, "three")

	it := l.Search(3)
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Key())
	assert.Equal(t, "three", it.Value())

	assert.Equal(t, l.End(), l.Search(2))
}

func TestIteratorSeekGE(t *testing.T) {
	l := New[int, string]()
	l.Insert(1, "one")
	l.Insert(3, "three")
	l.Insert(5, "five")

	it := l.SeekGE(2)
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Key())

	it = l.SeekGE(3)
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Key())

	assert.Equal(t, l.End(), l.SeekGE(6))
}

func TestIteratorAllEarlyBreak(t *testing.T) {
	l := New[int, int]()
	for i := range 10 {
		l.Insert(i, i)
	}

	var seen []int
	for k := range l.All() {
		if k == 3 {
			break
		}
		seen = append(seen, k)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}
