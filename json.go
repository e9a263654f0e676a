package keylist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// The wire contract, shared by both variants: marshaling always emits the
// tuple-sequence form [[key, value], ...], which is lossless for duplicate
// keys and order. Unmarshaling accepts either that form or a plain object
// {"key": value, ...}; the object form cannot represent duplicate keys, so
// round-tripping through it is only lossless when keys are distinct. Either
// way the structure is rebuilt through the Push path, in arrival order.

// MarshalJSON encodes the pair as a 2-element array.
func (p Pair[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Value})
}

// UnmarshalJSON decodes the pair from a 2-element array.
func (p *Pair[K, V]) UnmarshalJSON(data []byte) error {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	if len(elements) != 2 {
		return fmt.Errorf("keylist: pair has %d elements, expected 2", len(elements))
	}
	if err := json.Unmarshal(elements[0], &p.Key); err != nil {
		return fmt.Errorf("keylist: pair key: %w", err)
	}
	if err := json.Unmarshal(elements[1], &p.Value); err != nil {
		return fmt.Errorf("keylist: pair value: %w", err)
	}
	return nil
}

// MarshalJSON encodes the keylist as a sequence of [key, value] tuples in
// global order.
func (kl *HashKeylist[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(kl.Pairs())
}

// UnmarshalJSON decodes either wire shape and rebuilds the keylist through
// the Push path.
func (kl *HashKeylist[K, V]) UnmarshalJSON(data []byte) error {
	pairs, err := decodeJSONPairs[K, V](data)
	if err != nil {
		return err
	}
	kl.rows = make(map[K][]V, len(pairs))
	kl.keys = make([]K, 0, len(pairs))
	for _, p := range pairs {
		kl.Push(p.Key, p.Value)
	}
	return nil
}

// MarshalJSON encodes the list as a sequence of [key, value] tuples.
func (l *List[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Pairs())
}

// UnmarshalJSON decodes either wire shape into the list, in arrival order.
func (l *List[K, V]) UnmarshalJSON(data []byte) error {
	pairs, err := decodeJSONPairs[K, V](data)
	if err != nil {
		return err
	}
	l.pairs = pairs
	return nil
}

// decodeJSONPairs dispatches on the wire value's shape: an array is read as
// tuple pairs, an object as single-valued entries in document order.
func decodeJSONPairs[K comparable, V any](data []byte) ([]Pair[K, V], error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("keylist: empty input")
	}

	switch trimmed[0] {
	case '[':
		var pairs []Pair[K, V]
		if err := json.Unmarshal(data, &pairs); err != nil {
			return nil, err
		}
		return pairs, nil

	case '{':
		return decodeJSONObject[K, V](data)

	default:
		return nil, fmt.Errorf("keylist: expected array or object, found %q", trimmed[0])
	}
}

// decodeJSONObject walks the object token by token so that entries are kept
// in document order, which json.Unmarshal into a Go map would lose.
func decodeJSONObject[K comparable, V any](data []byte) ([]Pair[K, V], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var pairs []Pair[K, V]
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("keylist: object key %v is not a string", tok)
		}
		key, err := decodeObjectKey[K](name)
		if err != nil {
			return nil, fmt.Errorf("keylist: object key %q: %w", name, err)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("keylist: value for key %q: %w", name, err)
		}
		pairs = append(pairs, Pair[K, V]{key, value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// decodeObjectKey converts an object key, which is always a string on the
// wire, into K. String-like keys decode from the quoted form; numeric keys
// fall back to decoding the bare text, matching how encoding/json handles
// integer-keyed maps.
func decodeObjectKey[K comparable](name string) (K, error) {
	var key K
	if err := json.Unmarshal([]byte(strconv.Quote(name)), &key); err == nil {
		return key, nil
	}
	err := json.Unmarshal([]byte(name), &key)
	return key, err
}
