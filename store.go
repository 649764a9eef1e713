package assoc

import "fmt"

// store is the backing sequence of pairs. It is a plain growable
// array: it enforces no key uniqueness of its own and routes every
// allocation through the configured Allocator. All indices handed to
// its methods must be in bounds.
type store[K, V any] struct {
	pairs []Pair[K, V]
	alloc Allocator[K, V]
}

func (s *store[K, V]) len() int {
	return len(s.pairs)
}

func (s *store[K, V]) cap() int {
	return cap(s.pairs)
}

func (s *store[K, V]) at(i int) *Pair[K, V] {
	return &s.pairs[i]
}

// push appends p, doubling the capacity when the store is full.
func (s *store[K, V]) push(p Pair[K, V]) {
	if len(s.pairs) == cap(s.pairs) {
		s.reserve(max(1, len(s.pairs)))
	}
	s.pairs = append(s.pairs, p)
}

// swapRemove removes the entry at i by moving the last entry into its
// slot and shrinking by one. O(1), does not preserve order.
func (s *store[K, V]) swapRemove(i int) Pair[K, V] {
	last := len(s.pairs) - 1
	p := s.pairs[i]
	s.pairs[i] = s.pairs[last]
	// Zero the vacated slot so it does not pin the moved entry's
	// references.
	var zero Pair[K, V]
	s.pairs[last] = zero
	s.pairs = s.pairs[:last]
	return p
}

func (s *store[K, V]) clear() {
	clear(s.pairs)
	s.pairs = s.pairs[:0]
}

// reserve ensures room for additional more entries. Allocation failure
// is fatal; tryReserve is the recoverable form.
func (s *store[K, V]) reserve(additional int) {
	if err := s.tryReserve(additional); err != nil {
		panic("assoc: " + err.Error())
	}
}

func (s *store[K, V]) tryReserve(additional int) error {
	need := len(s.pairs) + additional
	if need <= cap(s.pairs) {
		return nil
	}
	grown, err := s.alloc.Resize(s.pairs, need)
	if err != nil {
		return fmt.Errorf("reserve %d entries: %w", additional, err)
	}
	s.pairs = grown
	return nil
}

// shrinkTo reduces the capacity to capacity, or to the current length
// if that is larger. Shrinking is advisory: if the allocator refuses,
// the store keeps its larger buffer.
func (s *store[K, V]) shrinkTo(capacity int) {
	capacity = max(capacity, len(s.pairs))
	if capacity >= cap(s.pairs) {
		return
	}
	shrunk, err := s.alloc.Resize(s.pairs, capacity)
	if err != nil {
		return
	}
	s.pairs = shrunk
}
