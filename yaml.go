package keylist

import (
	"fmt"

	yamlv3 "gopkg.in/yaml.v3"
)

// YAML follows the same wire contract as JSON: marshaling emits a sequence
// of [key, value] tuples, unmarshaling accepts a sequence or a mapping.
// Unlike JSON objects, YAML mapping nodes expose their entries in document
// order and may repeat keys, so the mapping form loses nothing here.

// MarshalYAML encodes the pair as a 2-element sequence.
func (p Pair[K, V]) MarshalYAML() (any, error) {
	return [2]any{p.Key, p.Value}, nil
}

// UnmarshalYAML decodes the pair from a 2-element sequence node.
func (p *Pair[K, V]) UnmarshalYAML(node *yamlv3.Node) error {
	if node.Kind != yamlv3.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("keylist: line %d: expected a 2-element sequence", node.Line)
	}
	if err := node.Content[0].Decode(&p.Key); err != nil {
		return fmt.Errorf("keylist: pair key: %w", err)
	}
	if err := node.Content[1].Decode(&p.Value); err != nil {
		return fmt.Errorf("keylist: pair value: %w", err)
	}
	return nil
}

// MarshalYAML encodes the keylist as a sequence of [key, value] tuples in
// global order.
func (kl *HashKeylist[K, V]) MarshalYAML() (any, error) {
	return kl.Pairs(), nil
}

// UnmarshalYAML decodes a sequence or mapping node and rebuilds the keylist
// through the Push path, in document order.
func (kl *HashKeylist[K, V]) UnmarshalYAML(node *yamlv3.Node) error {
	pairs, err := decodeYAMLPairs[K, V](node)
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

// MarshalYAML encodes the list as a sequence of [key, value] tuples.
func (l *List[K, V]) MarshalYAML() (any, error) {
	return l.Pairs(), nil
}

// UnmarshalYAML decodes a sequence or mapping node into the list, in
// document order.
func (l *List[K, V]) UnmarshalYAML(node *yamlv3.Node) error {
	pairs, err := decodeYAMLPairs[K, V](node)
	if err != nil {
		return err
	}
	l.pairs = pairs
	return nil
}

func decodeYAMLPairs[K comparable, V any](node *yamlv3.Node) ([]Pair[K, V], error) {
	if node.Kind == yamlv3.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yamlv3.SequenceNode:
		var pairs []Pair[K, V]
		if err := node.Decode(&pairs); err != nil {
			return nil, err
		}
		return pairs, nil

	case yamlv3.MappingNode:
		// Content holds key and value nodes interleaved, in document order.
		pairs := make([]Pair[K, V], 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var p Pair[K, V]
			if err := node.Content[i].Decode(&p.Key); err != nil {
				return nil, fmt.Errorf("keylist: line %d: mapping key: %w", node.Content[i].Line, err)
			}
			if err := node.Content[i+1].Decode(&p.Value); err != nil {
				return nil, fmt.Errorf("keylist: line %d: mapping value: %w", node.Content[i+1].Line, err)
			}
			pairs = append(pairs, p)
		}
		return pairs, nil

	default:
		return nil, fmt.Errorf("keylist: line %d: expected a sequence or mapping", node.Line)
	}
}
