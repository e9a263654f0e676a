package keylist

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// List is the flat keylist variant: a plain pair sequence with no index.
// Lookups are linear scans; positional mutation is direct. It exists for
// small lists and for key types where building a hash index is not worth it.
//
// Not safe for concurrent use.
type List[K comparable, V any] struct {
	pairs []Pair[K, V]
}

// NewList initializes an empty List.
func NewList[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// ListFromPairs builds a List from a copy of the given pairs.
func ListFromPairs[K comparable, V any](pairs []Pair[K, V]) *List[K, V] {
	return &List[K, V]{pairs: slices.Clone(pairs)}
}

// CollectList builds a List from a pair sequence, in arrival order.
func CollectList[K comparable, V any](seq iter.Seq2[K, V]) *List[K, V] {
	l := NewList[K, V]()
	l.Extend(seq)
	return l
}

// Push appends the pair.
func (l *List[K, V]) Push(key K, value V) {
	l.pairs = append(l.pairs, Pair[K, V]{key, value})
}

// Extend pushes every pair of the sequence, in arrival order.
func (l *List[K, V]) Extend(seq iter.Seq2[K, V]) {
	for key, value := range seq {
		l.Push(key, value)
	}
}

// Insert places the pair at the given position. Panics if index is out of
// range (> Len()).
func (l *List[K, V]) Insert(index int, key K, value V) {
	if index < 0 || index > len(l.pairs) {
		panic(fmt.Sprintf("keylist: insert index out of range [%d] with length %d", index, len(l.pairs)))
	}
	l.pairs = slices.Insert(l.pairs, index, Pair[K, V]{key, value})
}

// Pop removes and returns the last pair, or false if the list is empty.
func (l *List[K, V]) Pop() (K, V, bool) {
	if len(l.pairs) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	p := l.pairs[len(l.pairs)-1]
	l.pairs = l.pairs[:len(l.pairs)-1]
	return p.Key, p.Value, true
}

// Remove removes and returns the pair at the given position. Panics if
// index is out of range (>= Len()).
func (l *List[K, V]) Remove(index int) (K, V) {
	if index < 0 || index >= len(l.pairs) {
		panic(fmt.Sprintf("keylist: remove index out of range [%d] with length %d", index, len(l.pairs)))
	}
	p := l.pairs[index]
	l.pairs = slices.Delete(l.pairs, index, index+1)
	return p.Key, p.Value
}

// Get returns the first value stored for the given key and whether the key
// existed. O(n).
func (l *List[K, V]) Get(key K) (V, bool) {
	for _, p := range l.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	var zero V
	return zero, false
}

// GetKeyValue returns the key together with its first value and whether the
// key existed.
func (l *List[K, V]) GetKeyValue(key K) (K, V, bool) {
	value, ok := l.Get(key)
	return key, value, ok
}

// GetAll returns a fresh slice of all values stored for the given key, in
// order, and whether the key occurred at all.
func (l *List[K, V]) GetAll(key K) ([]V, bool) {
	values := []V{}
	for _, p := range l.pairs {
		if p.Key == key {
			values = append(values, p.Value)
		}
	}
	return values, len(values) > 0
}

// All yields every pair in order.
func (l *List[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range l.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys yields every key in order, duplicates included.
func (l *List[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range l.pairs {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values yields every value in order.
func (l *List[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range l.pairs {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Pairs returns a copy of the pair sequence.
func (l *List[K, V]) Pairs() []Pair[K, V] {
	return slices.Clone(l.pairs)
}

// UpdateValues replaces each value with fn(key, value), in order.
func (l *List[K, V]) UpdateValues(fn func(K, V) V) {
	for i, p := range l.pairs {
		l.pairs[i].Value = fn(p.Key, p.Value)
	}
}

// IsEmpty returns true if there are no pairs.
func (l *List[K, V]) IsEmpty() bool { return len(l.pairs) == 0 }

// Len returns the number of pairs.
func (l *List[K, V]) Len() int { return len(l.pairs) }

// Clone returns a copy.
func (l *List[K, V]) Clone() *List[K, V] {
	return &List[K, V]{pairs: slices.Clone(l.pairs)}
}

// SortByKeyFunc stably sorts the pairs by key.
func (l *List[K, V]) SortByKeyFunc(compare func(K, K) int) {
	slices.SortStableFunc(l.pairs, func(a, b Pair[K, V]) int {
		return compare(a.Key, b.Key)
	})
}

// SortByValueFunc stably sorts the pairs by value.
func (l *List[K, V]) SortByValueFunc(compare func(V, V) int) {
	slices.SortStableFunc(l.pairs, func(a, b Pair[K, V]) int {
		return compare(a.Value, b.Value)
	})
}

// SortFunc stably sorts the pairs by key, breaking ties by value.
func (l *List[K, V]) SortFunc(compareKeys func(K, K) int, compareValues func(V, V) int) {
	slices.SortStableFunc(l.pairs, func(a, b Pair[K, V]) int {
		if c := compareKeys(a.Key, b.Key); c != 0 {
			return c
		}
		return compareValues(a.Value, b.Value)
	})
}

// SortListByKey stably sorts the pairs in ascending key order.
func SortListByKey[K cmp.Ordered, V any](l *List[K, V]) {
	l.SortByKeyFunc(cmp.Compare[K])
}

// SortListByValue stably sorts the pairs in ascending value order.
func SortListByValue[K comparable, V cmp.Ordered](l *List[K, V]) {
	l.SortByValueFunc(cmp.Compare[V])
}

// SortList stably sorts the pairs in ascending key order, ties broken by
// value.
func SortList[K, V cmp.Ordered](l *List[K, V]) {
	l.SortFunc(cmp.Compare[K], cmp.Compare[V])
}

// GetKeyValueSorted looks up a pair by binary search. The list must already
// be sorted by key (see SortListByKey); any matching pair may be returned.
func GetKeyValueSorted[K cmp.Ordered, V any](l *List[K, V], key K) (K, V, bool) {
	index, found := slices.BinarySearchFunc(l.pairs, key, func(p Pair[K, V], k K) int {
		return cmp.Compare(p.Key, k)
	})
	if !found {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	p := l.pairs[index]
	return p.Key, p.Value, true
}

// GetSorted is like GetKeyValueSorted but returns only the value.
func GetSorted[K cmp.Ordered, V any](l *List[K, V], key K) (V, bool) {
	_, value, ok := GetKeyValueSorted(l, key)
	return value, ok
}

// Contains reports whether the exact pair occurs in the list.
func Contains[K, V comparable](l *List[K, V], pair Pair[K, V]) bool {
	return slices.Contains(l.pairs, pair)
}

// Swapped returns a new List with every pair's key and value exchanged.
func Swapped[K, V comparable](l *List[K, V]) *List[V, K] {
	pairs := make([]Pair[V, K], len(l.pairs))
	for i, p := range l.pairs {
		pairs[i] = Pair[V, K]{p.Value, p.Key}
	}
	return &List[V, K]{pairs: pairs}
}

// ListEqual reports whether two lists hold the same pair sequence.
func ListEqual[K, V comparable](a, b *List[K, V]) bool {
	return slices.Equal(a.pairs, b.pairs)
}

// EqualFunc reports whether two lists hold the same pair sequence, comparing
// values with eq.
func (l *List[K, V]) EqualFunc(other *List[K, V], eq func(V, V) bool) bool {
	return slices.EqualFunc(l.pairs, other.pairs, func(a, b Pair[K, V]) bool {
		return a.Key == b.Key && eq(a.Value, b.Value)
	})
}
