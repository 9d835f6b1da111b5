// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes OpenAPI slicing capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasslice/oasslice"
	"github.com/oasslice/oasslice/parser"
	"github.com/oasslice/oasslice/slicer"
)

const serverInstructions = `oasslice MCP server: loads an OpenAPI spec and extracts minimal single-endpoint slices from it.

Workflow: call load_spec (or load_spec_from_url) once, then list_endpoints to discover operations, then extract_slice per endpoint. Each session holds one loaded spec; loading again replaces it.

Configuration: defaults are configurable via OASSLICE_* environment variables set in your MCP client config.

Key settings:
- OASSLICE_FETCH_TIMEOUT (default: 30s) — timeout for URL fetches
- OASSLICE_MAX_INLINE_SIZE (default: 10485760) — max inline content bytes for load_spec
- OASSLICE_ALLOW_PRIVATE_IPS (default: false) — allow URL fetches to private/loopback addresses
- OASSLICE_DEFAULT_FORMAT — output format for extract_slice when unset (yaml or json)`

// toolServer holds the per-session state behind the MCP tools: the slicing
// engine with its single loaded document. Every MCP session gets its own
// instance, so two clients never see each other's spec.
type toolServer struct {
	slicer *slicer.Slicer
}

func newToolServer() *toolServer {
	return &toolServer{slicer: slicer.New()}
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasslice", Version: oasslice.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerTools(server, newToolServer())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerTools(server *mcp.Server, ts *toolServer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_spec",
		Description: "Load an OpenAPI specification into the session from a file path or inline content. Exactly one of file or content must be provided. Replaces any previously loaded spec. Returns the spec title, version, and path count.",
	}, ts.handleLoadSpec)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_spec_from_url",
		Description: "Fetch an OpenAPI specification from an http(s) URL and load it into the session. Replaces any previously loaded spec. The fetch timeout is configurable per call via timeout_seconds.",
	}, ts.handleLoadSpecFromURL)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List all endpoints in the loaded OpenAPI specification, in document order. Each entry carries the path, upper-cased HTTP method, summary, and operationId. Requires a loaded spec.",
	}, ts.handleListEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_slice",
		Description: "Extract a minimal valid OpenAPI spec containing a single endpoint plus every component schema it transitively references. Non-schema component categories are carried over whole. Method matching is case-insensitive. Output format follows the loaded document unless format (yaml or json) is given.",
	}, ts.handleExtractSlice)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Report whether a spec is loaded in this session and how many endpoints it exposes.",
	}, ts.handleStatus)
}

// newParser creates the parser used by the load tools, honoring the
// configured fetch timeout. Parser logs go to slog's default handler,
// which writes to stderr and so never corrupts the stdio transport.
func (ts *toolServer) newParser() *parser.Parser {
	p := parser.New()
	p.Timeout = cfg.FetchTimeout
	p.Logger = parser.NewSlogAdapter(slog.Default())
	return p
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
