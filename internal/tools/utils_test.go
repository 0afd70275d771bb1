package tools

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/quickchart-mcp/internal/chart"
)

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestGetChartConfig(t *testing.T) {
	tests := []struct {
		name          string
		arguments     map[string]interface{}
		expectedType  chart.Type
		expectError   bool
		errorContains string
	}{
		{
			name: "valid bar chart",
			arguments: map[string]interface{}{
				"type":   "bar",
				"labels": []any{"Q1", "Q2"},
				"datasets": []any{
					map[string]any{"label": "Sales", "data": []any{10.0, 20.0}},
				},
				"title": "Quarterly Sales",
			},
			expectedType: chart.TypeBar,
		},
		{
			name: "type alias accepted",
			arguments: map[string]interface{}{
				"type":   "donut",
				"labels": []any{"a"},
				"datasets": []any{
					map[string]any{"data": []any{1.0}},
				},
			},
			expectedType: chart.TypeDoughnut,
		},
		{
			name:          "missing type",
			arguments:     map[string]interface{}{},
			expectError:   true,
			errorContains: "type parameter is required",
		},
		{
			name: "unsupported type",
			arguments: map[string]interface{}{
				"type": "histogram",
				"datasets": []any{
					map[string]any{"data": []any{1.0}},
				},
			},
			expectError:   true,
			errorContains: "unsupported chart type",
		},
		{
			name: "missing datasets",
			arguments: map[string]interface{}{
				"type":   "bar",
				"labels": []any{"a"},
			},
			expectError:   true,
			errorContains: "datasets parameter is required",
		},
		{
			name: "invalid labels",
			arguments: map[string]interface{}{
				"type":   "bar",
				"labels": []any{"a", 2},
				"datasets": []any{
					map[string]any{"data": []any{1.0, 2.0}},
				},
			},
			expectError:   true,
			errorContains: "invalid labels",
		},
		{
			name: "validation failure propagated",
			arguments: map[string]interface{}{
				"type":   "bar",
				"labels": []any{"a", "b"},
				"datasets": []any{
					map[string]any{"data": []any{1.0}},
				},
			},
			expectError:   true,
			errorContains: "labels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := GetChartConfig(newRequest(tt.arguments))

			if tt.expectError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedType, cfg.Type)
			}
		})
	}
}

func TestGetChartConfig_LegendFollowsLabels(t *testing.T) {
	withLabel := newRequest(map[string]interface{}{
		"type":   "bar",
		"labels": []any{"a"},
		"datasets": []any{
			map[string]any{"label": "Sales", "data": []any{1.0}},
		},
	})
	cfg, err := GetChartConfig(withLabel)
	require.NoError(t, err)
	assert.True(t, cfg.Legend)

	withoutLabel := newRequest(map[string]interface{}{
		"type":   "bar",
		"labels": []any{"a"},
		"datasets": []any{
			map[string]any{"data": []any{1.0}},
		},
	})
	cfg, err = GetChartConfig(withoutLabel)
	require.NoError(t, err)
	assert.False(t, cfg.Legend)
}

func TestGetRenderRequest(t *testing.T) {
	cfg := &chart.Config{
		Type:     chart.TypeBar,
		Labels:   []string{"a"},
		Datasets: []chart.Dataset{{Data: []any{1.0}}},
	}

	tests := []struct {
		name          string
		arguments     map[string]interface{}
		expectError   bool
		errorContains string
		check         func(t *testing.T, width, height int, format string)
	}{
		{
			name:      "defaults",
			arguments: map[string]interface{}{},
			check: func(t *testing.T, width, height int, format string) {
				assert.Zero(t, width)
				assert.Zero(t, height)
				assert.Empty(t, format)
			},
		},
		{
			name: "explicit dimensions and format",
			arguments: map[string]interface{}{
				"width":  float64(800),
				"height": float64(400),
				"format": "SVG",
			},
			check: func(t *testing.T, width, height int, format string) {
				assert.Equal(t, 800, width)
				assert.Equal(t, 400, height)
				assert.Equal(t, "svg", format)
			},
		},
		{
			name: "width out of bounds",
			arguments: map[string]interface{}{
				"width": float64(5000),
			},
			expectError:   true,
			errorContains: "width must be between",
		},
		{
			name: "negative height",
			arguments: map[string]interface{}{
				"height": float64(-1),
			},
			expectError:   true,
			errorContains: "height must be between",
		},
		{
			name: "unsupported format",
			arguments: map[string]interface{}{
				"format": "gif",
			},
			expectError:   true,
			errorContains: "unsupported format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderReq, err := GetRenderRequest(newRequest(tt.arguments), cfg)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(string(renderReq.Chart), `{"type":"bar"`))
				tt.check(t, renderReq.Width, renderReq.Height, renderReq.Format)
			}
		})
	}
}

func TestParseDatasets(t *testing.T) {
	tests := []struct {
		name          string
		input         any
		expectError   bool
		errorContains string
		expectedLen   int
	}{
		{
			name: "valid datasets",
			input: []any{
				map[string]any{"label": "a", "data": []any{1.0}},
				map[string]any{"data": []any{2.0}, "fill": true},
			},
			expectedLen: 2,
		},
		{
			name:          "nil input",
			input:         nil,
			expectError:   true,
			errorContains: "required",
		},
		{
			name:          "not an array",
			input:         "datasets",
			expectError:   true,
			errorContains: "expected an array",
		},
		{
			name:          "element not an object",
			input:         []any{"dataset"},
			expectError:   true,
			errorContains: "not an object",
		},
		{
			name:          "missing data",
			input:         []any{map[string]any{"label": "a"}},
			expectError:   true,
			errorContains: "missing a 'data' array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			datasets, err := parseDatasets(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				assert.Len(t, datasets, tt.expectedLen)
			}
		})
	}
}

func TestParseDatasets_FieldMapping(t *testing.T) {
	datasets, err := parseDatasets([]any{
		map[string]any{
			"label":           "Sales",
			"data":            []any{1.0, 2.0},
			"backgroundColor": "red",
			"borderColor":     []any{"blue", "green"},
			"fill":            false,
		},
	})
	require.NoError(t, err)
	require.Len(t, datasets, 1)

	ds := datasets[0]
	assert.Equal(t, "Sales", ds.Label)
	assert.Equal(t, []any{1.0, 2.0}, ds.Data)
	assert.Equal(t, "red", ds.BackgroundColor)
	assert.Equal(t, []any{"blue", "green"}, ds.BorderColor)
	require.NotNil(t, ds.Fill)
	assert.False(t, *ds.Fill)
}

func TestResolveOutputPath(t *testing.T) {
	tests := []struct {
		name       string
		outputPath string
		outputDir  string
		format     string
		check      func(t *testing.T, path string)
	}{
		{
			name:       "absolute path preserved",
			outputPath: "/tmp/out/chart.png",
			outputDir:  "/data/charts",
			format:     "png",
			check: func(t *testing.T, path string) {
				assert.Equal(t, "/tmp/out/chart.png", path)
			},
		},
		{
			name:       "relative path joined to output dir",
			outputPath: "reports/chart.svg",
			outputDir:  "/data/charts",
			format:     "svg",
			check: func(t *testing.T, path string) {
				assert.Equal(t, filepath.FromSlash("/data/charts/reports/chart.svg"), path)
			},
		},
		{
			name:      "generated filename when empty",
			outputDir: "/data/charts",
			format:    "webp",
			check: func(t *testing.T, path string) {
				assert.Equal(t, filepath.FromSlash("/data/charts"), filepath.Dir(path))
				assert.True(t, strings.HasPrefix(filepath.Base(path), "chart-"))
				assert.True(t, strings.HasSuffix(path, ".webp"))
			},
		},
		{
			name:      "empty format defaults to png",
			outputDir: "/data/charts",
			check: func(t *testing.T, path string) {
				assert.True(t, strings.HasSuffix(path, ".png"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ResolveOutputPath(tt.outputPath, tt.outputDir, tt.format))
		})
	}
}

func TestResolveOutputPath_GeneratedNamesAreUnique(t *testing.T) {
	first := ResolveOutputPath("", "/data", "png")
	second := ResolveOutputPath("", "/data", "png")
	assert.NotEqual(t, first, second)
}
