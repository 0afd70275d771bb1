package tools

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

// fakeRenderer is a test double for the QuickChart client
type fakeRenderer struct {
	buildURL    string
	buildErr    error
	renderBytes []byte
	renderErr   error
	shortURL    string
	shortErr    error

	renderCalls atomic.Int32
	shortCalls  atomic.Int32
}

var _ types.Renderer = &fakeRenderer{}

func (f *fakeRenderer) BuildURL(req types.RenderRequest) (string, error) {
	return f.buildURL, f.buildErr
}

func (f *fakeRenderer) Render(ctx context.Context, req types.RenderRequest) ([]byte, error) {
	f.renderCalls.Add(1)
	return f.renderBytes, f.renderErr
}

func (f *fakeRenderer) CreateShortURL(ctx context.Context, req types.RenderRequest) (string, error) {
	f.shortCalls.Add(1)
	return f.shortURL, f.shortErr
}

// validChartArgs returns a minimal valid argument set for chart tools
func validChartArgs() map[string]interface{} {
	return map[string]interface{}{
		"type":   "bar",
		"labels": []any{"Q1", "Q2"},
		"datasets": []any{
			map[string]any{"label": "Sales", "data": []any{10.0, 20.0}},
		},
	}
}

// resultText extracts the text payload from a tool result
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}
