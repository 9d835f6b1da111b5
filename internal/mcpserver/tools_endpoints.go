package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listEndpointsInput struct{}

// endpointSummary is the wire shape for one endpoint.
type endpointSummary struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Summary     string `json:"summary,omitempty"`
	OperationID string `json:"operation_id,omitempty"`
}

type listEndpointsOutput struct {
	Endpoints []endpointSummary `json:"endpoints"`
	Count     int               `json:"count"`
}

func (ts *toolServer) handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, _ listEndpointsInput) (*mcp.CallToolResult, listEndpointsOutput, error) {
	endpoints, err := ts.slicer.Endpoints()
	if err != nil {
		return errResult(err), listEndpointsOutput{}, nil
	}

	summaries := make([]endpointSummary, 0, len(endpoints))
	for _, ep := range endpoints {
		summaries = append(summaries, endpointSummary{
			Path:        ep.Path,
			Method:      ep.Method,
			Summary:     ep.Summary,
			OperationID: ep.OperationID,
		})
	}
	return nil, listEndpointsOutput{Endpoints: summaries, Count: len(summaries)}, nil
}
