package keylist

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"golang.org/x/exp/maps"
)

// HashKeylist is an order-preserving multimap with hashed lookup. It keeps
// two synchronized representations: the global key sequence (insertion
// order, duplicates allowed) and a row of values per distinct key. Every
// mutator updates both within the same call; the two halves are never
// visible in a partially updated state.
//
// Not safe for concurrent use; guard with a single lock if shared.
type HashKeylist[K comparable, V any] struct {
	rows map[K][]V
	keys []K
}

// New initializes an empty HashKeylist.
func New[K comparable, V any]() *HashKeylist[K, V] {
	return &HashKeylist[K, V]{rows: map[K][]V{}}
}

// NewWithCapacity initializes an empty HashKeylist with room for the given
// number of pairs.
func NewWithCapacity[K comparable, V any](capacity int) *HashKeylist[K, V] {
	return &HashKeylist[K, V]{
		rows: make(map[K][]V, capacity),
		keys: make([]K, 0, capacity),
	}
}

// FromPairs builds a HashKeylist from a pair slice, in order, via the same
// append path as Push.
func FromPairs[K comparable, V any](pairs []Pair[K, V]) *HashKeylist[K, V] {
	kl := NewWithCapacity[K, V](len(pairs))
	for _, p := range pairs {
		kl.Push(p.Key, p.Value)
	}
	return kl
}

// Collect builds a HashKeylist from a pair sequence, in arrival order.
//
// Collecting an unordered map (e.g. maps.All) produces single-valued rows
// in whatever order the map yields; any prior duplicate-key structure is
// already lost at that point.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) *HashKeylist[K, V] {
	kl := New[K, V]()
	kl.Extend(seq)
	return kl
}

// Push appends the value to the key's row, creating the row if absent, and
// appends the key to the key sequence.
func (kl *HashKeylist[K, V]) Push(key K, value V) {
	kl.rows[key] = append(kl.rows[key], value)
	kl.keys = append(kl.keys, key)
}

// Extend pushes every pair of the sequence, in arrival order.
func (kl *HashKeylist[K, V]) Extend(seq iter.Seq2[K, V]) {
	for key, value := range seq {
		kl.Push(key, value)
	}
}

// Insert places the pair at the given global position. Panics if index is
// out of range (> Len()).
//
// The value lands at the key's per-key offset for that position: the number
// of occurrences of the key before index. Inserting a new occurrence of an
// existing key therefore never disturbs the relative order of that key's
// other values.
func (kl *HashKeylist[K, V]) Insert(index int, key K, value V) {
	if index < 0 || index > len(kl.keys) {
		panic(fmt.Sprintf("keylist: insert index out of range [%d] with length %d", index, len(kl.keys)))
	}
	offset := kl.offsetWithin(key, index)
	kl.rows[key] = slices.Insert(kl.rows[key], offset, value)
	kl.keys = slices.Insert(kl.keys, index, key)
}

// Pop removes and returns the last pair in key-sequence order. The value
// removed is the last element of that key's row. Returns false if the
// keylist is empty.
func (kl *HashKeylist[K, V]) Pop() (K, V, bool) {
	if len(kl.keys) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	key := kl.keys[len(kl.keys)-1]
	kl.keys = kl.keys[:len(kl.keys)-1]
	row := kl.rows[key]
	value := row[len(row)-1]
	if len(row) == 1 {
		delete(kl.rows, key)
	} else {
		kl.rows[key] = row[:len(row)-1]
	}
	return key, value, true
}

// Remove removes and returns the pair at the given global position. Panics
// if index is out of range (>= Len()).
func (kl *HashKeylist[K, V]) Remove(index int) (K, V) {
	if index < 0 || index >= len(kl.keys) {
		panic(fmt.Sprintf("keylist: remove index out of range [%d] with length %d", index, len(kl.keys)))
	}
	key := kl.keys[index]
	offset := kl.offsetWithin(key, index)
	kl.keys = slices.Delete(kl.keys, index, index+1)
	row := kl.rows[key]
	value := row[offset]
	if len(row) == 1 {
		delete(kl.rows, key)
	} else {
		kl.rows[key] = slices.Delete(row, offset, offset+1)
	}
	return key, value
}

// Clear removes all pairs.
func (kl *HashKeylist[K, V]) Clear() {
	kl.rows = map[K][]V{}
	kl.keys = nil
}

// Get returns the first value stored for the given key and whether the key
// existed.
func (kl *HashKeylist[K, V]) Get(key K) (V, bool) {
	row, ok := kl.rows[key]
	if !ok {
		var zero V
		return zero, false
	}
	return row[0], true
}

// GetKeyValue returns the key together with its first value and whether the
// key existed.
func (kl *HashKeylist[K, V]) GetKeyValue(key K) (K, V, bool) {
	value, ok := kl.Get(key)
	return key, value, ok
}

// GetAll returns the live row for the given key, in insertion order, and
// whether the key existed. If the key does not exist, an empty slice is
// returned.
//
// Elements of the returned slice may be reassigned in place. Appending to it
// does not update the key sequence — only Push and Insert do — so use Push
// to add values.
func (kl *HashKeylist[K, V]) GetAll(key K) ([]V, bool) {
	row, ok := kl.rows[key]
	if !ok {
		return []V{}, false
	}
	return row, true
}

// Has returns true if the key is present.
func (kl *HashKeylist[K, V]) Has(key K) bool {
	_, ok := kl.rows[key]
	return ok
}

// CountOf returns the number of values stored for the given key.
func (kl *HashKeylist[K, V]) CountOf(key K) int {
	return len(kl.rows[key])
}

// IsEmpty returns true if there are no pairs.
func (kl *HashKeylist[K, V]) IsEmpty() bool { return len(kl.keys) == 0 }

// Len returns the number of key/value pairs.
func (kl *HashKeylist[K, V]) Len() int { return len(kl.keys) }

// SortByKeyFunc sorts only the key sequence; rows are untouched. Iteration
// afterwards re-interleaves existing values: the n-th occurrence of a key in
// the new order pairs with the n-th value of its row.
func (kl *HashKeylist[K, V]) SortByKeyFunc(compare func(K, K) int) {
	slices.SortFunc(kl.keys, compare)
}

// SortFunc sorts the key sequence, then each row's values in place.
func (kl *HashKeylist[K, V]) SortFunc(compareKeys func(K, K) int, compareValues func(V, V) int) {
	kl.SortByKeyFunc(compareKeys)
	for _, row := range kl.rows {
		slices.SortFunc(row, compareValues)
	}
}

// SortByKey sorts only the key sequence in ascending key order. See
// HashKeylist.SortByKeyFunc for the effect on iteration order.
func SortByKey[K cmp.Ordered, V any](kl *HashKeylist[K, V]) {
	slices.Sort(kl.keys)
}

// Sort sorts the key sequence in ascending key order, then each row's
// values in ascending order.
func Sort[K, V cmp.Ordered](kl *HashKeylist[K, V]) {
	slices.Sort(kl.keys)
	for _, row := range kl.rows {
		slices.Sort(row)
	}
}

// Clone returns a deep copy.
func (kl *HashKeylist[K, V]) Clone() *HashKeylist[K, V] {
	rows := make(map[K][]V, len(kl.rows))
	for key, row := range kl.rows {
		rows[key] = slices.Clone(row)
	}
	return &HashKeylist[K, V]{rows: rows, keys: slices.Clone(kl.keys)}
}

// Equal reports whether two keylists hold the same key sequence and the
// same rows.
func Equal[K, V comparable](a, b *HashKeylist[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func (kl *HashKeylist[K, V]) EqualFunc(other *HashKeylist[K, V], eq func(V, V) bool) bool {
	if !slices.Equal(kl.keys, other.keys) {
		return false
	}
	return maps.EqualFunc(kl.rows, other.rows, func(a, b []V) bool {
		return slices.EqualFunc(a, b, eq)
	})
}
