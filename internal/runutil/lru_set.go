// internal/runutil/lru_set.go
package runutil

import "container/list"

// LRUSet is a size-bounded set with O(1) hit/insert and LRU eviction. The
// pipeline uses it to bound the memory of --unique ID tracking on very
// large multi-file runs (--dedupe-cap); an evicted ID seen again is kept
// as if new, trading exactness for a hard memory ceiling.
type LRUSet[K comparable] struct {
	cap int
	ll  *list.List
	m   map[K]*list.Element
}

type lruNode[K comparable] struct{ k K }

// NewLRUSet returns a set remembering at most capacity keys. capacity
// must be positive; callers wanting exact dedupe should use a plain map
// instead of capping.
func NewLRUSet[K comparable](capacity int) *LRUSet[K] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUSet[K]{cap: capacity, ll: list.New(), m: make(map[K]*list.Element, capacity)}
}

// Add inserts k; returns true if it was already present. A hit refreshes
// the key's recency, so steadily repeated IDs are never evicted.
func (s *LRUSet[K]) Add(k K) bool {
	if e, ok := s.m[k]; ok {
		s.ll.MoveToFront(e)
		return true
	}
	e := s.ll.PushFront(&lruNode[K]{k: k})
	s.m[k] = e
	if s.ll.Len() > s.cap {
		tail := s.ll.Back()
		if tail != nil {
			s.ll.Remove(tail)
			delete(s.m, tail.Value.(*lruNode[K]).k)
		}
	}
	return false
}

// Len reports the number of keys currently remembered.
func (s *LRUSet[K]) Len() int { return s.ll.Len() }
