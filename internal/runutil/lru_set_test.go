package runutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUSetAdd(t *testing.T) {
	s := NewLRUSet[string](4)

	assert.False(t, s.Add("a"))
	assert.False(t, s.Add("b"))
	assert.True(t, s.Add("a"), "repeat within capacity is a hit")
	assert.Equal(t, 2, s.Len())
}

func TestLRUSetEvictsOldest(t *testing.T) {
	s := NewLRUSet[int](2)

	s.Add(1)
	s.Add(2)
	s.Add(3) // evicts 1
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Add(1), "evicted key reads as new")
	assert.True(t, s.Add(3))
}

func TestLRUSetHitRefreshesRecency(t *testing.T) {
	s := NewLRUSet[int](2)

	s.Add(1)
	s.Add(2)
	s.Add(1) // 1 becomes most recent; 2 is now the eviction candidate
	s.Add(3) // evicts 2
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(2))
}

func TestLRUSetTinyCapacity(t *testing.T) {
	s := NewLRUSet[string](0) // clamped to 1
	assert.False(t, s.Add("x"))
	assert.True(t, s.Add("x"))
	assert.False(t, s.Add("y"))
	assert.Equal(t, 1, s.Len())
}
