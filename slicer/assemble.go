package slicer

import (
	"go.yaml.in/yaml/v4"

	"github.com/oasslice/oasslice/internal/nodeutil"
)

// componentCategories lists the non-schema component categories recognized
// for copy-through, in output order. These are copied whole rather than
// reference-filtered: the slice may carry unused entries of these types but
// never misses a referenced one.
var componentCategories = []string{
	"responses",
	"parameters",
	"examples",
	"requestBodies",
	"headers",
	"securitySchemes",
	"links",
	"callbacks",
}

// buildComponents assembles the components mapping for a slice: the schemas
// named in the closure (in source-document order, copied by value) plus a
// verbatim copy of every recognized non-schema category present in the
// source. Categories absent from the source are omitted entirely.
func buildComponents(components *yaml.Node, names map[string]struct{}) *yaml.Node {
	out := nodeutil.EmptyMapping()

	if schemas := nodeutil.MapValue(components, "schemas"); schemas != nil && len(names) > 0 {
		kept := nodeutil.EmptyMapping()
		src := nodeutil.Unwrap(schemas)
		for i := 0; i+1 < len(src.Content); i += 2 {
			key := src.Content[i]
			if key.Kind != yaml.ScalarNode {
				continue
			}
			if _, ok := names[key.Value]; ok {
				nodeutil.Append(kept, key.Value, nodeutil.DeepCopy(src.Content[i+1]))
			}
		}
		nodeutil.Append(out, "schemas", kept)
	}

	for _, category := range componentCategories {
		if v := nodeutil.MapValue(components, category); v != nil {
			nodeutil.Append(out, category, nodeutil.DeepCopy(v))
		}
	}

	return out
}
