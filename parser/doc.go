// Package parser loads OpenAPI specification documents from bytes, files,
// or URLs into an order-preserving document tree.
//
// The parser is deliberately generic: it does not bind the document to typed
// OpenAPI structures. A loaded Document wraps a yaml.Node mapping tree, which
// keeps mapping keys in source order so that downstream serialization is
// deterministic and diffs against the source stay minimal.
//
// A document is accepted when it parses, is a mapping at the top level, and
// contains a paths key. Anything else is rejected with a structured error
// from the sliceerrors package before it ever reaches the slicing engine.
//
// # Usage
//
//	p := parser.New()
//	doc, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s v%s (%d paths)\n", doc.Title(), doc.Version(), doc.PathCount())
//
// Remote documents are fetched with a bounded timeout:
//
//	p := parser.New()
//	p.Timeout = 10 * time.Second
//	doc, err := p.Parse("https://example.com/openapi.yaml")
package parser
