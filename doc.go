// Package oasslice extracts minimal, self-contained slices from large
// OpenAPI specification documents.
//
// A slice is a valid OpenAPI document containing a single operation (one
// HTTP method on one path) together with every schema component that
// operation transitively depends on. Handing a slice to a language model or
// an API-testing tool avoids shipping a multi-thousand-line document when
// only one endpoint matters.
//
// The repository consists of three primary packages:
//
//   - parser: load YAML/JSON specification documents from bytes, files, or
//     URLs into an order-preserving document tree
//   - slicer: the extraction engine: endpoint listing, $ref closure
//     computation, and minimal slice assembly
//   - sliceerrors: structured error types shared across the module
//
// The engine is also exposed as a set of MCP (Model Context Protocol) tools
// over stdio via the oasslice binary:
//
//	oasslice mcp
//
// # Quick Start
//
// Load a specification and extract a slice:
//
//	import (
//		"github.com/oasslice/oasslice/parser"
//		"github.com/oasslice/oasslice/slicer"
//	)
//
//	doc, err := parser.New().Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s := slicer.New()
//	s.Load(doc)
//	slice, err := s.Extract("/pets/{id}", "GET")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := slice.MarshalYAML()
//	fmt.Println(string(out))
//
// List the endpoints a document offers:
//
//	endpoints, _ := s.Endpoints()
//	for _, ep := range endpoints {
//		fmt.Printf("%s %s\n", ep.Method, ep.Path)
//	}
package oasslice
