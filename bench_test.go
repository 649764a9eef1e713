package assoc

import (
	"strconv"
	"testing"

	"github.com/emirpasic/gods/maps/hashmap"
)

// The benchmarks put the linear scan cost in context: the builtin map
// and a hashing container are the baselines an AssocList deliberately
// trades away for keys that only support equality.

func benchKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	return keys
}

func BenchmarkGet(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		keys := benchKeys(n)

		b.Run("assoclist/"+strconv.Itoa(n), func(b *testing.B) {
			l := New[string, int](WithCapacity[string, int](n))
			for i, k := range keys {
				l.Set(k, i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				l.Get(keys[i%n])
			}
		})

		b.Run("map/"+strconv.Itoa(n), func(b *testing.B) {
			m := make(map[string]int, n)
			for i, k := range keys {
				m[k] = i
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = m[keys[i%n]]
			}
		})

		b.Run("gods-hashmap/"+strconv.Itoa(n), func(b *testing.B) {
			m := hashmap.New()
			for i, k := range keys {
				m.Put(k, i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Get(keys[i%n])
			}
		})
	}
}

func BenchmarkSet(b *testing.B) {
	for _, n := range []int{16, 256} {
		keys := benchKeys(n)

		b.Run("assoclist/"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				l := New[string, int](WithCapacity[string, int](n))
				for j, k := range keys {
					l.Set(k, j)
				}
			}
		})

		b.Run("map/"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := make(map[string]int, n)
				for j, k := range keys {
					m[k] = j
				}
			}
		})

		b.Run("gods-hashmap/"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m := hashmap.New()
				for j, k := range keys {
					m.Put(k, j)
				}
			}
		})
	}
}

func BenchmarkEntry(b *testing.B) {
	keys := benchKeys(256)
	l := New[string, int](WithCapacity[string, int](256))
	for i, k := range keys {
		l.Set(k, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := l.Entry(keys[i%256]).OrSet(0)
		*v++
	}
}
