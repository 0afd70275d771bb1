package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/quickchart-mcp/internal/cache"
	xclog "github.com/averycrespi/quickchart-mcp/internal/log"
	"github.com/averycrespi/quickchart-mcp/internal/metrics"
	"github.com/averycrespi/quickchart-mcp/internal/results"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

// DownloadChartTool handles chart render-and-save requests
type DownloadChartTool struct {
	renderer types.Renderer
	cache    cache.Cache
	config   types.Config
}

// NewDownloadChartTool creates a new download chart tool
func NewDownloadChartTool(renderer types.Renderer, renderCache cache.Cache, config types.Config) *DownloadChartTool {
	return &DownloadChartTool{
		renderer: renderer,
		cache:    renderCache,
		config:   config,
	}
}

// GetTool returns the MCP tool definition
func (t *DownloadChartTool) GetTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Render a chart with quickchart.io and save the image to a local file, returning the saved path"),
	}
	opts = append(opts, chartArgOptions()...)
	opts = append(opts,
		mcp.WithString("output_path",
			mcp.Description("Destination file path; relative paths resolve under the server's output directory, and a filename is generated when omitted")),
	)
	return mcp.NewTool(ToolDownloadChart, opts...)
}

// Handle processes the tool request
func (t *DownloadChartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := GetChartConfig(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	renderReq, err := GetRenderRequest(req, cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	img, cached, err := t.render(ctx, renderReq)
	if err != nil {
		metrics.RendersTotal.WithLabelValues(ToolDownloadChart, "error").Inc()
		return mcp.NewToolResultError(fmt.Sprintf("Failed to render chart: %v", err)), nil
	}
	metrics.RendersTotal.WithLabelValues(ToolDownloadChart, "ok").Inc()

	format := renderReq.Format
	if format == "" {
		format = "png"
	}
	path := ResolveOutputPath(mcp.ParseString(req, "output_path", ""), t.config.OutputDir, format)
	if err := writeFileAtomic(path, img); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save chart to %s: %v", path, err)), nil
	}

	toolResult := results.DownloadResult{
		Path:      path,
		Bytes:     len(img),
		ChartType: cfg.Type.String(),
		Format:    format,
		Cached:    cached,
		Message:   fmt.Sprintf("Saved a %s chart to %s.", cfg.Type, path),
	}

	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// render returns the image for the request, consulting the render cache
// first. Cache faults are logged and never fail the render.
func (t *DownloadChartTool) render(ctx context.Context, renderReq types.RenderRequest) (img []byte, cached bool, err error) {
	logger := xclog.WithComponent("tools")

	key, keyErr := cache.Key(renderReq)
	if keyErr == nil {
		if hit, ok := t.cache.Get(key); ok {
			metrics.CacheHitsTotal.Inc()
			return hit, true, nil
		}
		metrics.CacheMissesTotal.Inc()
	} else {
		logger.Warn().Err(keyErr).Msg("failed to derive cache key")
	}

	start := time.Now()
	img, err = t.renderer.Render(ctx, renderReq)
	if err != nil {
		return nil, false, err
	}
	metrics.RenderDuration.Observe(time.Since(start).Seconds())

	if keyErr == nil {
		if err := t.cache.Set(key, img); err != nil {
			logger.Warn().Err(err).Msg("failed to cache rendered chart")
		}
	}
	return img, false, nil
}

// writeFileAtomic writes the image so the destination is either complete
// or absent, never truncated.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()
	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write image data: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace file: %w", err)
	}
	return nil
}
