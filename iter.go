package keylist

import "iter"

// All yields every pair in global order. The key sequence is authoritative
// for order; each key's row is consumed front to back as its occurrences are
// encountered, one cursor per distinct key. Single pass per returned
// sequence; every call starts fresh cursors.
func (kl *HashKeylist[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		cursors := make(map[K]int, len(kl.rows))
		for _, key := range kl.keys {
			offset := cursors[key]
			cursors[key] = offset + 1
			if !yield(key, kl.rows[key][offset]) {
				return
			}
		}
	}
}

// Keys yields every key in global order, duplicates included.
func (kl *HashKeylist[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, key := range kl.keys {
			if !yield(key) {
				return
			}
		}
	}
}

// Values yields every value in global order.
func (kl *HashKeylist[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range kl.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// AllFor yields the key paired with each value of its row, in row order.
// Unknown keys yield an empty sequence. The sequence may be ranged over more
// than once.
func (kl *HashKeylist[K, V]) AllFor(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, value := range kl.rows[key] {
			if !yield(key, value) {
				return
			}
		}
	}
}

// Pairs returns the flattened pair sequence in global order.
func (kl *HashKeylist[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, len(kl.keys))
	for key, value := range kl.All() {
		pairs = append(pairs, Pair[K, V]{key, value})
	}
	return pairs
}

// UpdateValues replaces each value with fn(key, value), walking pairs in
// global order through the same per-key cursors as All.
func (kl *HashKeylist[K, V]) UpdateValues(fn func(K, V) V) {
	cursors := make(map[K]int, len(kl.rows))
	for _, key := range kl.keys {
		offset := cursors[key]
		cursors[key] = offset + 1
		row := kl.rows[key]
		row[offset] = fn(key, row[offset])
	}
}

// offsetWithin translates a global position into an index within key's row:
// the count of occurrences of key among the first index slots of the key
// sequence.
func (kl *HashKeylist[K, V]) offsetWithin(key K, index int) int {
	offset := 0
	for _, k := range kl.keys[:index] {
		if k == key {
			offset++
		}
	}
	return offset
}
