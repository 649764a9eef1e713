package assoc

import "iter"

// All returns an iterator over the entries of the list in iteration
// order. Like all iterators of this package it is lazy and single
// pass: ranging over it again starts a fresh scan. The list must not
// be mutated while a loop over it is running.
func (l *AssocList[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range l.store.len() {
			p := l.store.at(i)
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys of the list in iteration
// order.
func (l *AssocList[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := range l.store.len() {
			if !yield(l.store.at(i).Key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of the list in iteration
// order.
func (l *AssocList[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for i := range l.store.len() {
			if !yield(l.store.at(i).Value) {
				return
			}
		}
	}
}

// Pairs returns an iterator over pointers to the entries of the list,
// for updating values in place during iteration:
//
//	for p := range l.Pairs() {
//		p.Value *= 2
//	}
//
// Replacing Key through the yielded pointer breaks the list's
// uniqueness guarantee. No other mutation of the list is allowed
// while the loop runs.
func (l *AssocList[K, V]) Pairs() iter.Seq[*Pair[K, V]] {
	return func(yield func(*Pair[K, V]) bool) {
		for i := range l.store.len() {
			if !yield(l.store.at(i)) {
				return
			}
		}
	}
}

// Drain returns an iterator that yields every entry once and empties
// the list. The list is cleared when the loop finishes, whether it ran
// to exhaustion or stopped early, so after any range over Drain the
// list is empty.
func (l *AssocList[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		defer l.Clear()
		for i := range l.store.len() {
			p := l.store.at(i)
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
