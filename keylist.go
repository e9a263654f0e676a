// Package keylist implements order-preserving multimaps: sequences of
// key/value pairs in which a key may occur more than once, inspired by
// Elixir's keyword lists.
//
// HashKeylist adds a hash index over the pair sequence for O(1) average
// lookup; List is the plain flat variant with linear scans.
package keylist

import (
	"iter"
)

// Pair is a single key/value entry. It is the element type of all
// flattened forms of a keylist.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Keylist is the read surface shared by HashKeylist and List.
type Keylist[K comparable, V any] interface {
	// Len returns the number of key/value pairs.
	Len() int

	// IsEmpty returns true if there are no pairs.
	IsEmpty() bool

	// Get returns the first value stored for the given key and whether the
	// key existed.
	Get(key K) (V, bool)

	// GetAll returns all values stored for the given key, in insertion
	// order, and whether the key existed.
	GetAll(key K) ([]V, bool)

	// GetKeyValue returns the key together with its first value and whether
	// the key existed.
	GetKeyValue(key K) (K, V, bool)

	// All yields every pair in global insertion order.
	All() iter.Seq2[K, V]

	// Keys yields every key in global order, duplicates included.
	Keys() iter.Seq[K]

	// Values yields every value in global order.
	Values() iter.Seq[V]

	// Pairs returns the flattened pair sequence.
	Pairs() []Pair[K, V]
}

var (
	_ Keylist[string, int] = (*HashKeylist[string, int])(nil)
	_ Keylist[string, int] = (*List[string, int])(nil)
)
