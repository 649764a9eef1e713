package assoc

// An Entry is a view into an [AssocList] for a single key, produced by
// [AssocList.Entry] with one scan. It is either occupied (the key has
// an entry, whose position was captured during the scan) or vacant,
// and lets the caller read, replace, insert, or remove at that key
// without scanning again:
//
//	counts.Entry(word).OrSet(0)
//
// The captured position stays valid only while the list is not
// mutated through anything but the Entry itself. Mutating the list
// underneath a live Entry and then using it is a programming error.
// Where the stored position no longer exists the Entry methods panic
// rather than touch another key's slot. Only shrinkage past the
// position is detectable, though: mutations that leave the length
// unchanged, such as a removal followed by an insertion, move another
// entry under the captured position and cannot be caught.
type Entry[K, V any] struct {
	list  *AssocList[K, V]
	key   K
	index int // position in the store, -1 when vacant
}

// Entry scans once for key and returns the resulting view.
func (l *AssocList[K, V]) Entry(key K) *Entry[K, V] {
	return &Entry[K, V]{list: l, key: key, index: l.index(key)}
}

// Occupied reports whether the list had an entry for the key when the
// view was created or one was inserted through the view since.
func (e *Entry[K, V]) Occupied() bool {
	return e.index >= 0
}

// Key returns the key the view was created with. For an occupied view
// it is read from the stored entry.
func (e *Entry[K, V]) Key() K {
	if e.index >= 0 {
		return e.slot().Key
	}
	return e.key
}

// slot returns the stored pair an occupied view points at.
func (e *Entry[K, V]) slot() *Pair[K, V] {
	if e.index >= e.list.store.len() {
		panic("assoc: entry is stale: list mutated behind the view")
	}
	return e.list.store.at(e.index)
}

// Get returns a pointer to the value of an occupied view, or nil for
// a vacant one. The pointer is valid until the next structural
// mutation of the list.
func (e *Entry[K, V]) Get() *V {
	if e.index < 0 {
		return nil
	}
	return &e.slot().Value
}

// OrSet returns a pointer to the stored value, inserting def first if
// the view is vacant. Exactly one of the two branches runs; the view
// is occupied afterwards.
func (e *Entry[K, V]) OrSet(def V) *V {
	if e.index < 0 {
		e.insert(def)
	}
	return &e.slot().Value
}

// Set stores value at the key. An occupied view replaces in place and
// returns the previous value; a vacant view appends, becomes occupied,
// and returns replaced == false.
func (e *Entry[K, V]) Set(value V) (prev V, replaced bool) {
	if e.index < 0 {
		e.insert(value)
		return prev, false
	}
	p := e.slot()
	prev = p.Value
	p.Value = value
	return prev, true
}

// Delete removes the entry of an occupied view, with the same
// swap-removal semantics as [AssocList.Delete], and returns the
// removed pair. The view is vacant afterwards. Deleting through a
// vacant view returns false.
func (e *Entry[K, V]) Delete() (Pair[K, V], bool) {
	if e.index < 0 {
		return Pair[K, V]{}, false
	}
	e.slot() // staleness check before the store mutates
	p := e.list.store.swapRemove(e.index)
	e.index = -1
	return p, true
}

// insert appends a pair for the view's key. The append is the only
// structural change since the view's scan, so the new entry is the
// last one.
func (e *Entry[K, V]) insert(value V) {
	e.list.store.push(Pair[K, V]{Key: e.key, Value: value})
	e.index = e.list.store.len() - 1
}
