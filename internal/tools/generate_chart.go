package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/quickchart-mcp/internal/metrics"
	"github.com/averycrespi/quickchart-mcp/internal/quickchart"
	"github.com/averycrespi/quickchart-mcp/internal/results"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

// GenerateChartTool handles chart URL generation requests
type GenerateChartTool struct {
	renderer types.Renderer
	config   types.Config
}

// NewGenerateChartTool creates a new generate chart tool
func NewGenerateChartTool(renderer types.Renderer, config types.Config) *GenerateChartTool {
	return &GenerateChartTool{
		renderer: renderer,
		config:   config,
	}
}

// GetTool returns the MCP tool definition
func (t *GenerateChartTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Generate a chart with quickchart.io and return its render URL, building the chart configuration from structured arguments"),
	}
	opts = append(opts, chartArgOptions()...)
	opts = append(opts,
		mcp.WithBoolean("use_short_url",
			mcp.Description("Always create a fixed short URL instead of an inline GET URL (default false)")),
	)
	return mcp.NewTool(ToolGenerateChart, opts...)
}

// Handle processes the tool request
func (t *GenerateChartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := GetChartConfig(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	renderReq, err := GetRenderRequest(req, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	short := mcp.ParseBoolean(req, "use_short_url", false)
	var chartURL string
	if !short {
		chartURL, err = t.renderer.BuildURL(renderReq)
		var tooLong *quickchart.URLTooLongError
		if errors.As(err, &tooLong) {
			if t.config.DisableShortURLs {
				metrics.RendersTotal.WithLabelValues(ToolGenerateChart, "error").Inc()
				return mcp.NewToolResultError(fmt.Sprintf("%v, and short URLs are disabled", err)), nil
			}
			short = true
		} else if err != nil {
			metrics.RendersTotal.WithLabelValues(ToolGenerateChart, "error").Inc()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build chart URL: %v", err)), nil
		}
	}
	if short {
		if t.config.DisableShortURLs {
			return mcp.NewToolResultError("short URLs are disabled by server configuration"), nil
		}
		chartURL, err = t.renderer.CreateShortURL(ctx, renderReq)
		if err != nil {
			metrics.RendersTotal.WithLabelValues(ToolGenerateChart, "error").Inc()
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create short URL: %v", err)), nil
		}
		metrics.ShortURLsTotal.Inc()
	}
	metrics.RendersTotal.WithLabelValues(ToolGenerateChart, "ok").Inc()

	format := renderReq.Format
	if format == "" {
		format = "png"
	}
	toolResult := results.ChartURLResult{
		URL:       chartURL,
		Short:     short,
		ChartType: cfg.Type.String(),
		Width:     renderReq.Width,
		Height:    renderReq.Height,
		Format:    format,
		Message:   fmt.Sprintf("Generated a %s chart URL.", cfg.Type),
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
