package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/quickchart-mcp/internal/chart"
	"github.com/averycrespi/quickchart-mcp/internal/results"
)

// ListChartTypesTool handles chart type listing requests
type ListChartTypesTool struct{}

// NewListChartTypesTool creates a new list chart types tool
func NewListChartTypesTool() *ListChartTypesTool {
	return &ListChartTypesTool{}
}

// GetTool returns the MCP tool definition
func (t *ListChartTypesTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolListChartTypes,
		mcp.WithDescription("List the chart types supported by the chart generation tools, with a short description of each"),
	)
}

// Handle processes the tool request
func (t *ListChartTypesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chartTypes := chart.Types()
	toolResult := results.ChartTypesResult{
		Count: len(chartTypes),
		Types: make([]results.ChartTypeEntry, 0, len(chartTypes)),
	}
	for _, ct := range chartTypes {
		toolResult.Types = append(toolResult.Types, results.ChartTypeEntry{
			Name:        ct.String(),
			Description: chart.TypeDescriptions[ct],
		})
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
