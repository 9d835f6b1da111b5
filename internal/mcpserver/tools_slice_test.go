package mcpserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasslice/oasslice/parser"
)

func TestExtractSlice(t *testing.T) {
	ts := loadedServer(t)

	result, output, err := ts.handleExtractSlice(context.Background(), &mcp.CallToolRequest{},
		extractSliceInput{Path: "/pets", Method: "GET"})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "yaml", output.Format)
	assert.Equal(t, []string{"Pet", "Owner"}, output.Schemas)
	assert.Contains(t, output.Document, "/pets")
	assert.Contains(t, output.Document, "Pet:")
	assert.Contains(t, output.Document, "Owner:")
	assert.NotContains(t, output.Document, "Order")
}

func TestExtractSlice_JSONFormat(t *testing.T) {
	ts := loadedServer(t)

	result, output, err := ts.handleExtractSlice(context.Background(), &mcp.CallToolRequest{},
		extractSliceInput{Path: "/pets", Method: "get", Format: "json"})
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, "json", output.Format)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(output.Document), &doc))
	assert.Contains(t, doc, "openapi")
	assert.Contains(t, doc, "paths")
	assert.Contains(t, doc, "components")
}

func TestExtractSlice_FollowsDocumentFormat(t *testing.T) {
	ts := newToolServer()
	jsonSpec := `{"openapi":"3.0.0","info":{"title":"JSON API","version":"1.0.0"},"paths":{"/ping":{"get":{"responses":{"200":{"description":"pong"}}}}}}`
	result, _, err := ts.handleLoadSpec(context.Background(), &mcp.CallToolRequest{},
		loadSpecInput{Content: jsonSpec})
	require.NoError(t, err)
	require.Nil(t, result)

	result, output, err := ts.handleExtractSlice(context.Background(), &mcp.CallToolRequest{},
		extractSliceInput{Path: "/ping", Method: "GET"})
	require.NoError(t, err)
	require.Nil(t, result)
	assert.Equal(t, "json", output.Format)
}

func TestExtractSlice_NotFound(t *testing.T) {
	ts := loadedServer(t)

	result, _, err := ts.handleExtractSlice(context.Background(), &mcp.CallToolRequest{},
		extractSliceInput{Path: "/missing", Method: "GET"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestExtractSlice_NotLoaded(t *testing.T) {
	ts := newToolServer()

	result, _, err := ts.handleExtractSlice(context.Background(), &mcp.CallToolRequest{},
		extractSliceInput{Path: "/pets", Method: "GET"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestExtractSlice_MissingArguments(t *testing.T) {
	ts := loadedServer(t)

	result, _, err := ts.handleExtractSlice(context.Background(), &mcp.CallToolRequest{},
		extractSliceInput{Path: "/pets"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestExtractSlice_InvalidFormat(t *testing.T) {
	ts := loadedServer(t)

	result, _, err := ts.handleExtractSlice(context.Background(), &mcp.CallToolRequest{},
		extractSliceInput{Path: "/pets", Method: "GET", Format: "xml"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name          string
		requested     string
		configDefault string
		docFormat     parser.SourceFormat
		want          parser.SourceFormat
	}{
		{name: "explicit wins", requested: "json", configDefault: "yaml", docFormat: parser.SourceFormatYAML, want: parser.SourceFormatJSON},
		{name: "config default", requested: "", configDefault: "json", docFormat: parser.SourceFormatYAML, want: parser.SourceFormatJSON},
		{name: "document format", requested: "", configDefault: "", docFormat: parser.SourceFormatJSON, want: parser.SourceFormatJSON},
		{name: "yaml fallback", requested: "", configDefault: "", docFormat: parser.SourceFormatUnknown, want: parser.SourceFormatYAML},
		{name: "invalid explicit", requested: "xml", configDefault: "", docFormat: parser.SourceFormatYAML, want: parser.SourceFormatUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldDefault := cfg.DefaultFormat
			cfg.DefaultFormat = tt.configDefault
			defer func() { cfg.DefaultFormat = oldDefault }()

			assert.Equal(t, tt.want, outputFormat(tt.requested, tt.docFormat))
		})
	}
}
