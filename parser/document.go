package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/oasslice/oasslice/internal/nodeutil"
)

// Document is a loaded OpenAPI specification held as a generic,
// order-preserving node tree.
//
// Callers should treat a Document as read-only after loading. The slicing
// engine deep-copies every subtree it places into a slice, so slices can be
// mutated freely without affecting the source document.
type Document struct {
	// SourcePath is the document's input source path or URL.
	// For non-file inputs this is a synthetic name ending in '.yaml' or '.json'.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat

	root *yaml.Node
}

// NewDocument wraps a mapping node in a Document. It is used by the slicing
// engine to give extracted slices the same serialization surface as loaded
// documents; it performs no validation.
func NewDocument(root *yaml.Node, format SourceFormat) *Document {
	return &Document{root: root, SourceFormat: format}
}

// Root returns the top-level mapping node of the document.
func (d *Document) Root() *yaml.Node {
	return d.root
}

// Title returns info.title, or the empty string if absent.
func (d *Document) Title() string {
	return nodeutil.StringValue(nodeutil.MapValue(d.root, "info"), "title")
}

// Version returns info.version, or the empty string if absent.
func (d *Document) Version() string {
	return nodeutil.StringValue(nodeutil.MapValue(d.root, "info"), "version")
}

// OpenAPIVersion returns the document's openapi version string,
// defaulting to "3.0.0" when the field is absent.
func (d *Document) OpenAPIVersion() string {
	if v := nodeutil.StringValue(d.root, "openapi"); v != "" {
		return v
	}
	return "3.0.0"
}

// Paths returns the paths mapping node, or nil if absent.
func (d *Document) Paths() *yaml.Node {
	return nodeutil.MapValue(d.root, "paths")
}

// PathCount returns the number of entries under paths.
func (d *Document) PathCount() int {
	return len(nodeutil.MapKeys(d.Paths()))
}

// Components returns the components mapping node, or nil if absent.
func (d *Document) Components() *yaml.Node {
	return nodeutil.MapValue(d.root, "components")
}

// Marshal serializes the document in the requested format. YAML output uses
// block style; JSON output is indented with two spaces. Both emit mapping
// keys in the order the node tree holds them, so repeated calls produce
// byte-identical output.
func (d *Document) Marshal(format SourceFormat) ([]byte, error) {
	if format == SourceFormatJSON {
		return d.MarshalJSONIndent("", "  ")
	}
	return d.MarshalYAML()
}

// MarshalYAML serializes the document as YAML with keys in source order.
func (d *Document) MarshalYAML() ([]byte, error) {
	return yaml.Marshal(d.root)
}

// MarshalJSONIndent serializes the document as indented JSON with keys in
// source order.
func (d *Document) MarshalJSONIndent(prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeNodeJSON(&buf, d.root); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// encodeNodeJSON writes a yaml.Node to a buffer as compact JSON, preserving
// the key order of mapping nodes. Scalars are decoded through the YAML type
// system first so that ints, floats, bools, and nulls survive the format
// change instead of becoming strings.
func encodeNodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return encodeNodeJSON(buf, n.Content[0])

	case yaml.AliasNode:
		return encodeNodeJSON(buf, n.Alias)

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyJSON, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')
			if err := encodeNodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeNodeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return fmt.Errorf("parser: failed to decode scalar %q: %w", n.Value, err)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil

	default:
		return fmt.Errorf("parser: unsupported node kind %d", n.Kind)
	}
}
