package mcpserver

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasslice/oasslice/parser"
	"github.com/oasslice/oasslice/sliceerrors"
)

type loadSpecInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
	Format  string `json:"format,omitempty"  jsonschema:"Treat the input as this format (yaml or json) instead of auto-detecting"`
}

type loadSpecOutput struct {
	Message   string `json:"message"`
	Title     string `json:"title,omitempty"`
	Version   string `json:"version,omitempty"`
	PathCount int    `json:"path_count"`
	Format    string `json:"format"`
	Source    string `json:"source,omitempty"`
}

func (ts *toolServer) handleLoadSpec(_ context.Context, _ *mcp.CallToolRequest, input loadSpecInput) (*mcp.CallToolResult, loadSpecOutput, error) {
	if (input.File == "") == (input.Content == "") {
		return errResult(&sliceerrors.InputError{
			Option:  "spec",
			Message: "exactly one of file or content must be provided",
		}), loadSpecOutput{}, nil
	}

	format, ok := parser.ParseFormat(input.Format)
	if !ok {
		return errResult(&sliceerrors.InputError{
			Option:  "format",
			Value:   input.Format,
			Message: "must be yaml or json",
		}), loadSpecOutput{}, nil
	}

	if input.Content != "" && int64(len(input.Content)) > cfg.MaxInlineSize {
		return errResult(&sliceerrors.InputError{
			Option: "content",
			Message: fmt.Sprintf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASSLICE_MAX_INLINE_SIZE to increase",
				len(input.Content), cfg.MaxInlineSize),
		}), loadSpecOutput{}, nil
	}

	p := ts.newParser()
	var doc *parser.Document
	var err error
	if input.File != "" {
		doc, err = p.Parse(input.File)
	} else {
		doc, err = p.ParseBytes([]byte(input.Content))
	}
	if err != nil {
		return errResult(err), loadSpecOutput{}, nil
	}
	if input.Format != "" {
		doc.SourceFormat = format
	}
	if input.File != "" {
		doc.SourcePath = input.File
	}

	ts.slicer.Load(doc)
	return nil, loadResultOutput(doc), nil
}

type loadSpecFromURLInput struct {
	URL            string `json:"url"                       jsonschema:"URL to fetch an OpenAPI document from"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" jsonschema:"Fetch timeout in seconds (default 30)"`
}

func (ts *toolServer) handleLoadSpecFromURL(_ context.Context, _ *mcp.CallToolRequest, input loadSpecFromURLInput) (*mcp.CallToolResult, loadSpecOutput, error) {
	if input.URL == "" {
		return errResult(&sliceerrors.InputError{
			Option:  "url",
			Message: "url must be provided",
		}), loadSpecOutput{}, nil
	}

	timeout := cfg.FetchTimeout
	if input.TimeoutSeconds > 0 {
		timeout = time.Duration(input.TimeoutSeconds) * time.Second
	}

	p := ts.newParser()
	p.Timeout = timeout
	if !cfg.AllowPrivateIPs {
		p.HTTPClient = newSafeHTTPClient(timeout)
	}

	doc, err := p.Parse(input.URL)
	if err != nil {
		return errResult(err), loadSpecOutput{}, nil
	}
	doc.SourcePath = input.URL

	ts.slicer.Load(doc)
	return nil, loadResultOutput(doc), nil
}

func loadResultOutput(doc *parser.Document) loadSpecOutput {
	return loadSpecOutput{
		Message: fmt.Sprintf("Successfully loaded OpenAPI spec: %s v%s with %d paths",
			doc.Title(), doc.Version(), doc.PathCount()),
		Title:     doc.Title(),
		Version:   doc.Version(),
		PathCount: doc.PathCount(),
		Format:    string(doc.SourceFormat),
		Source:    doc.SourcePath,
	}
}
