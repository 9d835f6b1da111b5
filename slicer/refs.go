package slicer

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/oasslice/oasslice/internal/nodeutil"
)

// schemaRefPrefix is the only $ref shape the closure algorithm follows.
// References to other component types, external files, or other documents
// are preserved verbatim in the output but never expanded.
const schemaRefPrefix = "#/components/schemas/"

// schemaRefName extracts the schema name from a $ref value node, or returns
// false when the value is not an internal schema reference.
func schemaRefName(value *yaml.Node) (string, bool) {
	ref, ok := nodeutil.ScalarString(value)
	if !ok || !strings.HasPrefix(ref, schemaRefPrefix) {
		return "", false
	}
	// The trailing path segment is the name.
	name := ref[strings.LastIndex(ref, "/")+1:]
	return name, name != ""
}

// collectSchemaRefs walks a node tree and adds the name carried by every
// schema $ref it reaches to names. Mappings have every value walked
// (including the values of $ref-bearing mappings), sequences have every
// element walked, scalars are leaves, and aliases are followed.
func collectSchemaRefs(n *yaml.Node, names map[string]struct{}) {
	if n == nil {
		return
	}
	switch n.Kind {
	case yaml.DocumentNode:
		for _, child := range n.Content {
			collectSchemaRefs(child, names)
		}
	case yaml.AliasNode:
		collectSchemaRefs(n.Alias, names)
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i], n.Content[i+1]
			if key.Kind == yaml.ScalarNode && key.Value == "$ref" {
				if name, ok := schemaRefName(value); ok {
					names[name] = struct{}{}
				}
			}
			collectSchemaRefs(value, names)
		}
	case yaml.SequenceNode:
		for _, item := range n.Content {
			collectSchemaRefs(item, names)
		}
	}
}

// schemaClosure returns every schema name transitively reachable from seed:
// the names referenced directly in the seed subtree plus, recursively, the
// names referenced by the definitions of already-collected names.
//
// The closure is computed with a grow-check fixed point: each pass rescans
// the definition of every collected name and the loop stops when a full
// pass adds nothing. Revisiting an already-collected name is a no-op, so
// mutually recursive schemas terminate in at most len(schemas)+1 passes.
// Names with no definition under schemas stay in the set (the dangling
// $ref survives in the output) but contribute no expansion.
func schemaClosure(seed *yaml.Node, schemas *yaml.Node) map[string]struct{} {
	names := make(map[string]struct{})
	collectSchemaRefs(seed, names)

	for {
		before := len(names)
		// Snapshot the current names so the pass scans a stable set.
		pending := make([]string, 0, len(names))
		for name := range names {
			pending = append(pending, name)
		}
		for _, name := range pending {
			if def := nodeutil.MapValue(schemas, name); def != nil {
				collectSchemaRefs(def, names)
			}
		}
		if len(names) == before {
			return names
		}
	}
}
