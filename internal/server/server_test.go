package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

func TestNewChartServer(t *testing.T) {
	s, err := NewChartServer(types.Config{OutputDir: t.TempDir()})
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.NotNil(t, s.mcpServer)
	assert.NotNil(t, s.renderer)
	assert.NotNil(t, s.renderCache)
	assert.Nil(t, s.opsServer, "ops endpoint should be disabled by default")

	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestNewChartServer_WithDiskCache(t *testing.T) {
	s, err := NewChartServer(types.Config{
		OutputDir: t.TempDir(),
		CacheDir:  t.TempDir(),
	})
	require.NoError(t, err)

	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestNewChartServer_WithOpsEndpoint(t *testing.T) {
	s, err := NewChartServer(types.Config{
		OutputDir: t.TempDir(),
		HTTPAddr:  "127.0.0.1:0",
	})
	require.NoError(t, err)
	assert.NotNil(t, s.opsServer)

	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestChartServer_RegisterTools(t *testing.T) {
	s, err := NewChartServer(types.Config{OutputDir: t.TempDir()})
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, s.Shutdown(context.Background()))
	}()

	s.registerTools()
}
