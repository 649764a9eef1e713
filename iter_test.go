package assoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestAllYieldsInsertionOrder(t *testing.T) {
	l := New[string, int]()
	l.Set("first", 1)
	l.Set("second", 2)
	l.Set("third", 3)
	l.Set("second", 20) // replace in place, position unchanged

	want := []Pair[string, int]{
		{"first", 1},
		{"second", 20},
		{"third", 3},
	}
	if diff := cmp.Diff(want, pairs(l)); diff != "" {
		t.Errorf("iteration order mismatch (-want +got):\n%s", diff)
	}
}

func TestKeysAndValues(t *testing.T) {
	l := From([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}})

	var keys []string
	for k := range l.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	var values []int
	for v := range l.Values() {
		values = append(values, v)
	}
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestPairsMutatesInPlace(t *testing.T) {
	l := From([]Pair[string, int]{{"a", 1}, {"b", 2}})

	for p := range l.Pairs() {
		p.Value *= 10
	}

	assert.Equal(t, 10, l.MustGet("a"))
	assert.Equal(t, 20, l.MustGet("b"))
	assert.Equal(t, 2, l.Len())
}

func TestIteratorEarlyBreak(t *testing.T) {
	l := From([]Pair[int, int]{{1, 1}, {2, 2}, {3, 3}})

	seen := 0
	for range l.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
	assert.Equal(t, 3, l.Len(), "breaking a read iterator does not mutate the list")
}

func TestIteratorRestarts(t *testing.T) {
	l := From([]Pair[int, int]{{1, 1}, {2, 2}})
	keys := l.Keys()

	// Each range over the sequence is a fresh scan.
	for range 2 {
		var got []int
		for k := range keys {
			got = append(got, k)
		}
		assert.Equal(t, []int{1, 2}, got)
	}
}

func TestDrain(t *testing.T) {
	input := []Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}}
	l := From(input)

	got := map[string]int{}
	for k, v := range l.Drain() {
		_, dup := got[k]
		assert.False(t, dup, "drain yields every entry exactly once")
		got[k] = v
	}

	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
	assert.True(t, l.Empty())
	assert.Equal(t, 0, l.Len())
}

func TestDrainAbandoned(t *testing.T) {
	l := From([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}})

	for range l.Drain() {
		break
	}

	// An abandoned drain still removes the unyielded entries.
	assert.True(t, l.Empty())

	l.Set("d", 4)
	assert.Equal(t, 1, l.Len(), "the list is usable after an abandoned drain")
}

func TestDrainEmptyList(t *testing.T) {
	l := New[string, int]()
	for range l.Drain() {
		t.Fatal("drain of an empty list must not yield")
	}
	assert.True(t, l.Empty())
}
