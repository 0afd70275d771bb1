package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/quickchart-mcp/internal/results"
)

func TestListChartTypesTool_Handle(t *testing.T) {
	tool := NewListChartTypesTool()

	res, err := tool.Handle(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)

	var out results.ChartTypesResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
	assert.Equal(t, out.Count, len(out.Types))
	assert.NotZero(t, out.Count)

	names := make(map[string]bool)
	for _, entry := range out.Types {
		assert.NotEmpty(t, entry.Name)
		assert.NotEmpty(t, entry.Description)
		names[entry.Name] = true
	}
	assert.True(t, names["bar"])
	assert.True(t, names["sparkline"])
}
