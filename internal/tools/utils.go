package tools

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/averycrespi/quickchart-mcp/internal/chart"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

// chartArgOptions returns the tool options shared by every chart-building tool
func chartArgOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("type", mcp.Required(),
			mcp.Description("Chart type (e.g. bar, line, pie, doughnut, radar, scatter); see "+ToolListChartTypes)),
		mcp.WithArray("labels",
			mcp.Description("Category labels, one per data element (required for bar, line, pie and similar charts)")),
		mcp.WithArray("datasets", mcp.Required(),
			mcp.Description("Datasets to plot: objects with 'data' (numbers, or {x, y} points for scatter/bubble) and optional 'label', 'backgroundColor', 'borderColor', 'fill'")),
		mcp.WithString("title",
			mcp.Description("Chart title, rendered above the chart")),
		mcp.WithNumber("width",
			mcp.Description("Image width in pixels (default 500)")),
		mcp.WithNumber("height",
			mcp.Description("Image height in pixels (default 300)")),
		mcp.WithString("format",
			mcp.Description("Output format: png, webp, svg, or pdf (default png)")),
		mcp.WithString("background_color",
			mcp.Description("Canvas background color (e.g. 'white', '#ffffff', 'transparent')")),
		mcp.WithNumber("device_pixel_ratio",
			mcp.Description("Device pixel ratio for high-DPI output (default 1)")),
	}
}

// GetChartConfig builds a chart config from the MCP request arguments
func GetChartConfig(req mcp.CallToolRequest) (*chart.Config, error) {
	typeArg := mcp.ParseString(req, "type", "")
	if typeArg == "" {
		return nil, fmt.Errorf("type parameter is required")
	}
	chartType := chart.ParseType(typeArg)
	if !chartType.Valid() {
		return nil, fmt.Errorf("unsupported chart type: %q (use %s to list supported types)", typeArg, ToolListChartTypes)
	}

	args := req.GetArguments()

	labels, err := parseStringSlice(args["labels"])
	if err != nil {
		return nil, fmt.Errorf("invalid labels: %w", err)
	}

	datasets, err := parseDatasets(args["datasets"])
	if err != nil {
		return nil, fmt.Errorf("invalid datasets: %w", err)
	}

	cfg := &chart.Config{
		Type:     chartType,
		Labels:   labels,
		Datasets: datasets,
		Title:    mcp.ParseString(req, "title", ""),
	}
	// Only show a legend when there is something to name.
	for _, ds := range datasets {
		if ds.Label != "" {
			cfg.Legend = true
			break
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetRenderRequest builds a render request from the MCP request arguments
// and a validated chart config.
func GetRenderRequest(req mcp.CallToolRequest, cfg *chart.Config) (types.RenderRequest, error) {
	chartJSON, err := cfg.MarshalJSON()
	if err != nil {
		return types.RenderRequest{}, err
	}

	width := int(mcp.ParseFloat64(req, "width", 0))
	height := int(mcp.ParseFloat64(req, "height", 0))
	for name, dim := range map[string]int{"width": width, "height": height} {
		if dim != 0 && (dim < chart.MinDimension || dim > chart.MaxDimension) {
			return types.RenderRequest{}, fmt.Errorf("%s must be between %d and %d pixels", name, chart.MinDimension, chart.MaxDimension)
		}
	}

	format := strings.ToLower(mcp.ParseString(req, "format", ""))
	if format != "" && !chart.ValidFormat(format) {
		return types.RenderRequest{}, fmt.Errorf("unsupported format: %q (expected png, webp, svg, or pdf)", format)
	}

	return types.RenderRequest{
		Chart:            chartJSON,
		Width:            width,
		Height:           height,
		Format:           format,
		BackgroundColor:  mcp.ParseString(req, "background_color", ""),
		DevicePixelRatio: mcp.ParseFloat64(req, "device_pixel_ratio", 0),
	}, nil
}

// parseStringSlice coerces a JSON array argument to a string slice
func parseStringSlice(v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", v)
	}
	out := make([]string, 0, len(raw))
	for i, e := range raw {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("element %d is %T, not a string", i, e)
		}
		out = append(out, s)
	}
	return out, nil
}

// parseDatasets coerces the datasets argument into chart datasets
func parseDatasets(v any) ([]chart.Dataset, error) {
	if v == nil {
		return nil, fmt.Errorf("datasets parameter is required")
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %T", v)
	}
	out := make([]chart.Dataset, 0, len(raw))
	for i, e := range raw {
		obj, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("dataset %d is %T, not an object", i, e)
		}
		ds := chart.Dataset{
			BackgroundColor: obj["backgroundColor"],
			BorderColor:     obj["borderColor"],
		}
		if label, ok := obj["label"].(string); ok {
			ds.Label = label
		}
		if fill, ok := obj["fill"].(bool); ok {
			ds.Fill = &fill
		}
		data, ok := obj["data"].([]any)
		if !ok {
			return nil, fmt.Errorf("dataset %d is missing a 'data' array", i)
		}
		ds.Data = data
		out = append(out, ds)
	}
	return out, nil
}

// ResolveOutputPath decides where a downloaded chart lands. Relative paths
// resolve under the output dir; an empty path gets a generated filename.
func ResolveOutputPath(outputPath, outputDir, format string) string {
	if format == "" {
		format = "png"
	}
	if outputPath == "" {
		return filepath.Join(outputDir, fmt.Sprintf("chart-%s.%s", uuid.NewString(), format))
	}
	if !filepath.IsAbs(outputPath) {
		return filepath.Join(outputDir, outputPath)
	}
	return outputPath
}
