// Package assoc implements an insertion-ordered key/value container
// backed by a contiguous growable slice of pairs.
//
// An [AssocList] offers the usual map operations, but only requires an
// equality relation on its keys: no ordering, no hashing, and not
// necessarily Go comparability. It is a fallback for keys that cannot
// live in the builtin map or a tree map, such as floating point keys
// with NaN semantics, or slice keys under [bytes.Equal]. Every keyed
// operation is a forward linear scan, so lookups and mutations are
// O(n) in the number of entries. Prefer the builtin map whenever the
// key type allows it.
//
// The container guarantees that no two entries ever share an equal
// key. Iteration yields entries in insertion order, except that
// [AssocList.Delete] moves the last entry into the vacated slot, so
// the order after a removal is not the original insertion order.
//
// An AssocList is not safe for concurrent use.
package assoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// A Pair is a single key/value entry of an [AssocList].
type Pair[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// An AssocList is an insertion-ordered collection of key/value pairs
// with at most one entry per key, where "per key" is decided by the
// equality function the list was created with.
//
// The zero value is not usable; create lists with [New], [NewFunc],
// [From], [FromFunc], or [Collect].
type AssocList[K, V any] struct {
	store store[K, V]
	eq    func(K, K) bool
}

type options[K, V any] struct {
	capacity int
	alloc    Allocator[K, V]
}

// An Option configures a list at construction time.
type Option[K, V any] func(*options[K, V])

// WithCapacity pre-sizes the backing store for at least capacity
// entries. The hint is speculative: it never changes [AssocList.Len]
// or any other observable map behavior.
func WithCapacity[K, V any](capacity int) Option[K, V] {
	return func(o *options[K, V]) {
		o.capacity = capacity
	}
}

// WithAllocator makes the backing store obtain memory through alloc
// instead of the Go runtime.
func WithAllocator[K, V any](alloc Allocator[K, V]) Option[K, V] {
	return func(o *options[K, V]) {
		o.alloc = alloc
	}
}

// New returns an empty list whose keys are compared with ==.
func New[K comparable, V any](opts ...Option[K, V]) *AssocList[K, V] {
	return NewFunc[K, V](func(a, b K) bool { return a == b }, opts...)
}

// NewFunc returns an empty list whose keys are compared with eq. It is
// the constructor for key types that are not comparable, or that need
// an equality relation other than ==:
//
//	l := assoc.NewFunc[[]byte, int](bytes.Equal)
//
// eq must be symmetric and transitive for the list to behave like a
// map. It does not have to be reflexive: a key that is not equal to
// itself (a NaN float, for example) can be inserted but never found
// again.
func NewFunc[K, V any](eq func(K, K) bool, opts ...Option[K, V]) *AssocList[K, V] {
	var o options[K, V]
	for _, opt := range opts {
		opt(&o)
	}
	if o.alloc == nil {
		o.alloc = runtimeAllocator[K, V]{}
	}
	l := &AssocList[K, V]{
		store: store[K, V]{alloc: o.alloc},
		eq:    eq,
	}
	if o.capacity > 0 {
		l.store.reserve(o.capacity)
	}
	return l
}

// From returns a list holding the given pairs, applied left to right
// with [AssocList.Set] semantics: a later pair with an already seen
// key overwrites the earlier value.
func From[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) *AssocList[K, V] {
	l := New[K, V](opts...)
	l.store.reserve(len(pairs))
	l.Extend(pairs...)
	return l
}

// FromFunc is [From] with an explicit key equality function.
func FromFunc[K, V any](eq func(K, K) bool, pairs []Pair[K, V], opts ...Option[K, V]) *AssocList[K, V] {
	l := NewFunc[K, V](eq, opts...)
	l.store.reserve(len(pairs))
	l.Extend(pairs...)
	return l
}

// Collect builds a list from seq, applied left to right with
// [AssocList.Set] semantics.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *AssocList[K, V] {
	l := New[K, V]()
	l.ExtendSeq(seq)
	return l
}

// Len returns the number of entries in the list.
func (l *AssocList[K, V]) Len() int {
	return l.store.len()
}

// Empty reports whether the list has no entries.
func (l *AssocList[K, V]) Empty() bool {
	return l.store.len() == 0
}

// Cap returns the number of entries the backing store can hold without
// growing.
func (l *AssocList[K, V]) Cap() int {
	return l.store.cap()
}

// index returns the position of the first entry whose key equals key,
// or -1. With the uniqueness invariant intact "first" is the only
// match.
func (l *AssocList[K, V]) index(key K) int {
	for i := range l.store.len() {
		if l.eq(l.store.at(i).Key, key) {
			return i
		}
	}
	return -1
}

// Get returns the value stored for key.
func (l *AssocList[K, V]) Get(key K) (V, bool) {
	if p := l.GetPair(key); p != nil {
		return p.Value, true
	}
	var zero V
	return zero, false
}

// GetPair returns a pointer to the entry for key, or nil if there is
// none. The pointer stays valid until the next structural mutation of
// the list. Callers may update Value in place; replacing Key breaks
// the list's uniqueness guarantee.
func (l *AssocList[K, V]) GetPair(key K) *Pair[K, V] {
	if i := l.index(key); i >= 0 {
		return l.store.at(i)
	}
	return nil
}

// GetFunc returns a pointer to the first entry whose key satisfies
// match, or nil. It is the lookup to use when the caller has a query
// in a different form than the key type, for example a string query
// against []byte keys:
//
//	p := l.GetFunc(func(k []byte) bool { return string(k) == query })
func (l *AssocList[K, V]) GetFunc(match func(K) bool) *Pair[K, V] {
	for i := range l.store.len() {
		if p := l.store.at(i); match(p.Key) {
			return p
		}
	}
	return nil
}

// Contains reports whether the list has an entry for key.
func (l *AssocList[K, V]) Contains(key K) bool {
	return l.index(key) >= 0
}

// MustGet is like [AssocList.Get] but panics if the key is absent. It
// is the indexing form for keys the caller knows are present.
func (l *AssocList[K, V]) MustGet(key K) V {
	v, ok := l.Get(key)
	if !ok {
		panic(fmt.Sprintf("assoc: no entry for key %v", key))
	}
	return v
}

// Set stores value for key. If the list already has an entry with an
// equal key its value is replaced in place and the previous value is
// returned with replaced == true; otherwise the pair is appended.
func (l *AssocList[K, V]) Set(key K, value V) (prev V, replaced bool) {
	if i := l.index(key); i >= 0 {
		p := l.store.at(i)
		prev = p.Value
		p.Value = value
		return prev, true
	}
	l.store.push(Pair[K, V]{Key: key, Value: value})
	return prev, false
}

// Delete removes the entry for key and returns its value. Removal
// moves the last entry into the vacated slot, so it is O(1) after the
// scan but changes the iteration order of the remaining entries.
func (l *AssocList[K, V]) Delete(key K) (V, bool) {
	if p, ok := l.DeletePair(key); ok {
		return p.Value, true
	}
	var zero V
	return zero, false
}

// DeletePair removes the entry for key and returns it. See
// [AssocList.Delete] for the effect on iteration order.
func (l *AssocList[K, V]) DeletePair(key K) (Pair[K, V], bool) {
	if i := l.index(key); i >= 0 {
		return l.store.swapRemove(i), true
	}
	return Pair[K, V]{}, false
}

// Clear removes all entries, keeping the allocated store.
func (l *AssocList[K, V]) Clear() {
	l.store.clear()
}

// Extend applies [AssocList.Set] for each pair, left to right.
func (l *AssocList[K, V]) Extend(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		l.Set(p.Key, p.Value)
	}
}

// ExtendSeq applies [AssocList.Set] for each element of seq, left to
// right.
func (l *AssocList[K, V]) ExtendSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		l.Set(k, v)
	}
}

// Reserve grows the backing store so that at least additional more
// entries fit without another allocation. It panics if the allocator
// cannot satisfy the request; use [AssocList.TryReserve] to recover
// from allocation failure instead.
func (l *AssocList[K, V]) Reserve(additional int) {
	l.store.reserve(additional)
}

// TryReserve is [AssocList.Reserve] reporting allocation failure as an
// error. On failure the list and its entries are untouched.
func (l *AssocList[K, V]) TryReserve(additional int) error {
	return l.store.tryReserve(additional)
}

// ShrinkToFit releases excess capacity, reducing the backing store to
// the current length as far as the allocator allows.
func (l *AssocList[K, V]) ShrinkToFit() {
	l.store.shrinkTo(0)
}

// ShrinkTo releases excess capacity above capacity. It never drops
// below the current length.
func (l *AssocList[K, V]) ShrinkTo(capacity int) {
	l.store.shrinkTo(capacity)
}

// Clone returns a new list with the same entries, equality function,
// and allocator. Keys and values are shallow copies. The clone's
// backing store is obtained through the allocator, like every other
// allocation; failure is fatal, as for ordinary growth.
func (l *AssocList[K, V]) Clone() *AssocList[K, V] {
	pairs, err := l.store.alloc.Resize(l.store.pairs, len(l.store.pairs))
	if err != nil {
		panic("assoc: clone: " + err.Error())
	}
	return &AssocList[K, V]{
		store: store[K, V]{pairs: pairs, alloc: l.store.alloc},
		eq:    l.eq,
	}
}

// Equal reports whether a and b hold the same entries: same length,
// and every key of a maps in b to an equal value. Keys are compared
// with a's equality function.
func Equal[K any, V comparable](a, b *AssocList[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is [Equal] with an explicit value equality function. Since
// neither list can hold a key twice, checking every entry of a against
// b in one direction is enough. The scan over b uses a's key relation,
// not b's, so which relation decides is fixed by the argument order.
func EqualFunc[K, V1, V2 any](a *AssocList[K, V1], b *AssocList[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := range a.store.len() {
		p := a.store.at(i)
		q := b.GetFunc(func(k K) bool { return a.eq(p.Key, k) })
		if q == nil || !eq(p.Value, q.Value) {
			return false
		}
	}
	return true
}

// String returns the entries in insertion order, in the spirit of the
// builtin map format: assoc[k1:v1 k2:v2].
func (l *AssocList[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("assoc[")
	for i := range l.store.len() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		p := l.store.at(i)
		fmt.Fprintf(&sb, "%v:%v", p.Key, p.Value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// MarshalJSON encodes the list as an array of {"key": ..., "value":
// ...} objects in iteration order. An object encoding is not an
// option: JSON object keys are strings, and AssocList keys generally
// are not.
func (l *AssocList[K, V]) MarshalJSON() ([]byte, error) {
	if l.store.len() == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(l.store.pairs)
}

// UnmarshalJSON decodes an array of pairs produced by
// [AssocList.MarshalJSON], replacing the current entries. Duplicate
// keys in the input collapse with later-wins semantics. The list must
// have been created by a constructor first, since decoding alone
// cannot supply the key equality function.
func (l *AssocList[K, V]) UnmarshalJSON(data []byte) error {
	if l.eq == nil {
		return errors.New("assoc: unmarshal into uninitialized list")
	}
	var pairs []Pair[K, V]
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	l.Clear()
	l.Extend(pairs...)
	return nil
}
