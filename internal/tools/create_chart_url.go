package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/quickchart-mcp/internal/metrics"
	"github.com/averycrespi/quickchart-mcp/internal/results"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

// CreateChartURLTool handles short URL creation requests
type CreateChartURLTool struct {
	renderer types.Renderer
	config   types.Config
}

// NewCreateChartURLTool creates a new create chart URL tool
func NewCreateChartURLTool(renderer types.Renderer, config types.Config) *CreateChartURLTool {
	return &CreateChartURLTool{
		renderer: renderer,
		config:   config,
	}
}

// GetTool returns the MCP tool definition
func (t *CreateChartURLTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Create a fixed short URL for a chart on quickchart.io, suitable for sharing or embedding"),
	}
	opts = append(opts, chartArgOptions()...)
	return mcp.NewTool(ToolCreateChartURL, opts...)
}

// Handle processes the tool request
func (t *CreateChartURLTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if t.config.DisableShortURLs {
		return mcp.NewToolResultError("short URLs are disabled by server configuration"), nil
	}

	cfg, err := GetChartConfig(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	renderReq, err := GetRenderRequest(req, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	chartURL, err := t.renderer.CreateShortURL(ctx, renderReq)
	if err != nil {
		metrics.RendersTotal.WithLabelValues(ToolCreateChartURL, "error").Inc()
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create short URL: %v", err)), nil
	}
	metrics.RendersTotal.WithLabelValues(ToolCreateChartURL, "ok").Inc()
	metrics.ShortURLsTotal.Inc()

	format := renderReq.Format
	if format == "" {
		format = "png"
	}
	toolResult := results.ChartURLResult{
		URL:       chartURL,
		Short:     true,
		ChartType: cfg.Type.String(),
		Width:     renderReq.Width,
		Height:    renderReq.Height,
		Format:    format,
		Message:   fmt.Sprintf("Created a short URL for a %s chart.", cfg.Type),
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
