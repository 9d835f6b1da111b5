package slicer

import (
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v4"

	"github.com/oasslice/oasslice/internal/httputil"
	"github.com/oasslice/oasslice/internal/nodeutil"
	"github.com/oasslice/oasslice/parser"
	"github.com/oasslice/oasslice/sliceerrors"
)

// operationKeys are the path-item keys that name operations. Everything
// else at the path-item level (parameters, summary, description, servers,
// extensions) is skipped when enumerating endpoints.
var operationKeys = map[string]bool{
	httputil.MethodGet:     true,
	httputil.MethodPut:     true,
	httputil.MethodPost:    true,
	httputil.MethodDelete:  true,
	httputil.MethodOptions: true,
	httputil.MethodHead:    true,
	httputil.MethodPatch:   true,
	httputil.MethodTrace:   true,
}

// Endpoint describes one operation in the held document.
type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Summary     string `json:"summary"`
	OperationID string `json:"operationId"`
}

// Slicer owns at most one loaded specification document and extracts
// single-operation slices from it. The zero value is ready to use; so is
// New(). All methods are safe for concurrent use.
type Slicer struct {
	mu  sync.RWMutex
	doc *parser.Document
}

// New creates an empty Slicer with no document loaded.
func New() *Slicer {
	return &Slicer{}
}

// Load replaces the held document wholesale. The swap is atomic: concurrent
// readers observe either the previous document or doc, never a mix.
func (s *Slicer) Load(doc *parser.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
}

// Document returns the currently held document, or nil when none is loaded.
func (s *Slicer) Document() *parser.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Loaded reports whether a document is currently held.
func (s *Slicer) Loaded() bool {
	return s.Document() != nil
}

// Endpoints enumerates all operations in the held document, in the
// document's own path and method order. Returns ErrNotLoaded when no
// document is held.
func (s *Slicer) Endpoints() ([]Endpoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, sliceerrors.ErrNotLoaded
	}
	return s.endpointsLocked(), nil
}

func (s *Slicer) endpointsLocked() []Endpoint {
	var endpoints []Endpoint
	paths := nodeutil.Unwrap(s.doc.Paths())
	if paths == nil || paths.Kind != yaml.MappingNode {
		return endpoints
	}
	for i := 0; i+1 < len(paths.Content); i += 2 {
		if paths.Content[i].Kind != yaml.ScalarNode {
			continue
		}
		path := paths.Content[i].Value
		item := nodeutil.Unwrap(paths.Content[i+1])
		if item == nil || item.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j+1 < len(item.Content); j += 2 {
			if item.Content[j].Kind != yaml.ScalarNode {
				continue
			}
			method := item.Content[j].Value
			if !operationKeys[method] {
				continue
			}
			op := item.Content[j+1]
			endpoints = append(endpoints, Endpoint{
				Path:        path,
				Method:      strings.ToUpper(method),
				Summary:     nodeutil.StringValue(op, "summary"),
				OperationID: nodeutil.StringValue(op, "operationId"),
			})
		}
	}
	return endpoints
}

// Extract builds a minimal slice document for one operation: the original
// openapi version (default "3.0.0"), info and servers verbatim, paths
// restricted to the single requested entry, and components restricted to
// the schema closure of that operation plus unfiltered non-schema
// categories.
//
// The method match is case-insensitive. A missing path or method fails with
// a NotFoundError and leaves the held document untouched. Every subtree in
// the returned document is a deep copy; mutating it never shows through the
// source.
func (s *Slicer) Extract(path, method string) (*parser.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return nil, sliceerrors.ErrNotLoaded
	}

	lowerMethod := strings.ToLower(method)
	var op *yaml.Node
	if operationKeys[lowerMethod] {
		if item := nodeutil.MapValue(s.doc.Paths(), path); item != nil {
			op = nodeutil.MapValue(item, lowerMethod)
		}
	}
	if op == nil {
		return nil, &sliceerrors.NotFoundError{Method: method, Path: path}
	}

	root := nodeutil.EmptyMapping()
	nodeutil.Append(root, "openapi", nodeutil.StringScalar(s.doc.OpenAPIVersion()))

	if info := nodeutil.MapValue(s.doc.Root(), "info"); info != nil {
		nodeutil.Append(root, "info", nodeutil.DeepCopy(info))
	} else {
		nodeutil.Append(root, "info", nodeutil.EmptyMapping())
	}
	if servers := nodeutil.MapValue(s.doc.Root(), "servers"); servers != nil {
		nodeutil.Append(root, "servers", nodeutil.DeepCopy(servers))
	} else {
		nodeutil.Append(root, "servers", nodeutil.EmptySequence())
	}

	pathItem := nodeutil.EmptyMapping()
	nodeutil.Append(pathItem, lowerMethod, nodeutil.DeepCopy(op))
	paths := nodeutil.EmptyMapping()
	nodeutil.Append(paths, path, pathItem)
	nodeutil.Append(root, "paths", paths)

	components := s.doc.Components()
	names := schemaClosure(op, nodeutil.MapValue(components, "schemas"))
	nodeutil.Append(root, "components", buildComponents(components, names))

	return parser.NewDocument(root, s.doc.SourceFormat), nil
}

// Status returns a human-readable summary of the held state.
func (s *Slicer) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return "Status: No OpenAPI specification loaded"
	}
	return fmt.Sprintf("Status: OpenAPI specification loaded with %d endpoints available", len(s.endpointsLocked()))
}
