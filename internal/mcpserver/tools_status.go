package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type statusInput struct{}

type statusOutput struct {
	Status    string `json:"status"`
	Loaded    bool   `json:"loaded"`
	Source    string `json:"source,omitempty"`
	Title     string `json:"title,omitempty"`
	Endpoints int    `json:"endpoints"`
}

func (ts *toolServer) handleStatus(_ context.Context, _ *mcp.CallToolRequest, _ statusInput) (*mcp.CallToolResult, statusOutput, error) {
	output := statusOutput{Status: ts.slicer.Status()}
	if doc := ts.slicer.Document(); doc != nil {
		output.Loaded = true
		output.Source = doc.SourcePath
		output.Title = doc.Title()
		if endpoints, err := ts.slicer.Endpoints(); err == nil {
			output.Endpoints = len(endpoints)
		}
	}
	return nil, output, nil
}
