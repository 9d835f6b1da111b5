// Package nodeutil provides helpers for working with go.yaml.in/yaml/v4
// node trees: mapping lookup, key-order extraction, and deep copying.
//
// oasslice keeps specification documents as yaml.Node trees rather than
// map[string]any so that mapping key order survives a load/slice/serialize
// round trip.
package nodeutil

import "go.yaml.in/yaml/v4"

// Unwrap returns the mapping/sequence/scalar node behind a document or
// alias node. Returns nil for a nil or empty document node.
func Unwrap(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

// IsMapping reports whether n (after unwrapping) is a mapping node.
func IsMapping(n *yaml.Node) bool {
	n = Unwrap(n)
	return n != nil && n.Kind == yaml.MappingNode
}

// MapValue returns the value node for key in a mapping node, or nil when
// n is not a mapping or the key is absent.
func MapValue(n *yaml.Node, key string) *yaml.Node {
	n = Unwrap(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Kind == yaml.ScalarNode && n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// MapKeys returns the keys of a mapping node in source order.
// Returns nil when n is not a mapping.
func MapKeys(n *yaml.Node) []string {
	n = Unwrap(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Kind == yaml.ScalarNode {
			keys = append(keys, n.Content[i].Value)
		}
	}
	return keys
}

// ScalarString returns the string value of a scalar node and whether n
// (after unwrapping) was a scalar.
func ScalarString(n *yaml.Node) (string, bool) {
	n = Unwrap(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return "", false
	}
	return n.Value, true
}

// StringValue returns the scalar string stored under key in a mapping
// node, or the empty string when absent or not a scalar.
func StringValue(n *yaml.Node, key string) string {
	s, _ := ScalarString(MapValue(n, key))
	return s
}

// DeepCopy returns an independent copy of a node tree. Alias nodes are
// materialized: the copy contains the aliased content directly, so a copied
// subtree never points at an anchor outside itself. Anchor names are dropped
// from the copy for the same reason.
func DeepCopy(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	if n.Kind == yaml.AliasNode {
		// YAML requires anchors to precede aliases, so alias chains are
		// acyclic and this recursion terminates.
		return DeepCopy(n.Alias)
	}
	cp := *n
	cp.Anchor = ""
	cp.Alias = nil
	if len(n.Content) > 0 {
		cp.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			cp.Content[i] = DeepCopy(child)
		}
	}
	return &cp
}

// Scalar creates a scalar node with the given tag and value.
func Scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// StringScalar creates a !!str scalar node.
func StringScalar(value string) *yaml.Node {
	return Scalar("!!str", value)
}

// EmptyMapping creates an empty mapping node.
func EmptyMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

// EmptySequence creates an empty sequence node.
func EmptySequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

// Append adds a key/value pair to a mapping node.
func Append(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, StringScalar(key), value)
}
