package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasslice/oasslice/internal/nodeutil"
	"github.com/oasslice/oasslice/parser"
	"github.com/oasslice/oasslice/sliceerrors"
)

type extractSliceInput struct {
	Path   string `json:"path"             jsonschema:"The endpoint path, e.g. /pets/{petId}"`
	Method string `json:"method"           jsonschema:"The HTTP method, case-insensitive"`
	Format string `json:"format,omitempty" jsonschema:"Output format (yaml or json); defaults to the loaded document's format"`
}

type extractSliceOutput struct {
	Document string   `json:"document"`
	Format   string   `json:"format"`
	Schemas  []string `json:"schemas,omitempty"`
}

func (ts *toolServer) handleExtractSlice(_ context.Context, _ *mcp.CallToolRequest, input extractSliceInput) (*mcp.CallToolResult, extractSliceOutput, error) {
	if input.Path == "" || input.Method == "" {
		return errResult(&sliceerrors.InputError{
			Option:  "path",
			Message: "path and method must both be provided",
		}), extractSliceOutput{}, nil
	}

	slice, err := ts.slicer.Extract(input.Path, input.Method)
	if err != nil {
		return errResult(err), extractSliceOutput{}, nil
	}

	format := outputFormat(input.Format, slice.SourceFormat)
	if format == parser.SourceFormatUnknown {
		return errResult(&sliceerrors.InputError{
			Option:  "format",
			Value:   input.Format,
			Message: "must be yaml or json",
		}), extractSliceOutput{}, nil
	}

	data, err := slice.Marshal(format)
	if err != nil {
		return errResult(err), extractSliceOutput{}, nil
	}

	return nil, extractSliceOutput{
		Document: string(data),
		Format:   string(format),
		Schemas:  nodeutil.MapKeys(nodeutil.MapValue(slice.Components(), "schemas")),
	}, nil
}

// outputFormat resolves the serialization format for a slice: the explicit
// request wins, then the configured default, then the loaded document's own
// format. Returns SourceFormatUnknown for an unrecognised explicit value.
func outputFormat(requested string, docFormat parser.SourceFormat) parser.SourceFormat {
	if requested != "" {
		f, ok := parser.ParseFormat(requested)
		if !ok {
			return parser.SourceFormatUnknown
		}
		return f
	}
	if cfg.DefaultFormat != "" {
		f, _ := parser.ParseFormat(cfg.DefaultFormat)
		return f
	}
	if docFormat == parser.SourceFormatJSON {
		return parser.SourceFormatJSON
	}
	return parser.SourceFormatYAML
}
