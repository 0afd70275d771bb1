package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/quickchart-mcp/internal/results"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

func TestCreateChartURLTool_Handle(t *testing.T) {
	renderer := &fakeRenderer{shortURL: "https://quickchart.io/chart/render/sf-abc123"}
	tool := NewCreateChartURLTool(renderer, types.Config{})

	res, err := tool.Handle(context.Background(), newRequest(validChartArgs()))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out results.ChartURLResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.True(t, out.Short)
	assert.Equal(t, "https://quickchart.io/chart/render/sf-abc123", out.URL)
	assert.Equal(t, int32(1), renderer.shortCalls.Load())
}

func TestCreateChartURLTool_Handle_Disabled(t *testing.T) {
	renderer := &fakeRenderer{shortURL: "https://example.com"}
	tool := NewCreateChartURLTool(renderer, types.Config{DisableShortURLs: true})

	res, err := tool.Handle(context.Background(), newRequest(validChartArgs()))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, int32(0), renderer.shortCalls.Load())
}

func TestCreateChartURLTool_Handle_APIError(t *testing.T) {
	renderer := &fakeRenderer{shortErr: errors.New("service unavailable")}
	tool := NewCreateChartURLTool(renderer, types.Config{})

	res, err := tool.Handle(context.Background(), newRequest(validChartArgs()))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
