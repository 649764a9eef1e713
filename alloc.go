package assoc

// An Allocator decides where the backing store of an [AssocList]
// obtains its memory. Inject one with [WithAllocator]; lists created
// without it use the Go runtime. The choice of allocator affects only
// where memory comes from, never the observable behavior of the list.
type Allocator[K, V any] interface {
	// Resize returns a slice with the same length and contents as
	// pairs and capacity at least max(capacity, len(pairs)).
	// Implementations should return exactly the requested capacity
	// where possible, since Resize also serves shrink requests. A
	// non-nil error means the request cannot be satisfied and pairs
	// must be left untouched.
	Resize(pairs []Pair[K, V], capacity int) ([]Pair[K, V], error)
}

// runtimeAllocator allocates from the Go runtime. It never fails:
// running out of memory is fatal at the runtime level before Resize
// could report it.
type runtimeAllocator[K, V any] struct{}

func (runtimeAllocator[K, V]) Resize(pairs []Pair[K, V], capacity int) ([]Pair[K, V], error) {
	capacity = max(capacity, len(pairs))
	next := make([]Pair[K, V], len(pairs), capacity)
	copy(next, pairs)
	return next, nil
}
