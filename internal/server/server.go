package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/averycrespi/quickchart-mcp/internal/cache"
	xclog "github.com/averycrespi/quickchart-mcp/internal/log"
	"github.com/averycrespi/quickchart-mcp/internal/ops"
	"github.com/averycrespi/quickchart-mcp/internal/quickchart"
	"github.com/averycrespi/quickchart-mcp/internal/tools"
	"github.com/averycrespi/quickchart-mcp/pkg/project"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

var _ types.Server = &ChartServer{}

// ChartServer represents the QuickChart MCP server
type ChartServer struct {
	mcpServer   *server.MCPServer
	renderer    types.Renderer
	renderCache cache.Cache
	opsServer   *ops.Server
	config      types.Config
}

// NewChartServer creates a new QuickChart MCP server
func NewChartServer(config types.Config) (*ChartServer, error) {
	renderCache, err := cache.New(config.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open render cache: %w", err)
	}

	s := &ChartServer{
		mcpServer:   server.NewMCPServer(project.Name, project.Version),
		renderer:    quickchart.New(config),
		renderCache: renderCache,
		config:      config,
	}
	if config.HTTPAddr != "" {
		s.opsServer = ops.New(config.HTTPAddr)
	}
	return s, nil
}

// Serve registers the tools and serves MCP over stdio; it blocks until
// the client disconnects.
func (s *ChartServer) Serve(ctx context.Context) error {
	log := xclog.WithComponent("server")
	log.Info().
		Str("base_url", s.config.BaseURL).
		Str("output_dir", s.config.OutputDir).
		Bool("disk_cache", s.config.CacheDir != "").
		Msg("starting QuickChart MCP server")

	s.registerTools()

	if s.opsServer != nil {
		s.opsServer.Start()
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}
	return nil
}

func (s *ChartServer) registerTools() {
	generateTool := tools.NewGenerateChartTool(s.renderer, s.config)
	s.mcpServer.AddTool(generateTool.GetTool(), generateTool.Handle)

	downloadTool := tools.NewDownloadChartTool(s.renderer, s.renderCache, s.config)
	s.mcpServer.AddTool(downloadTool.GetTool(), downloadTool.Handle)

	shortURLTool := tools.NewCreateChartURLTool(s.renderer, s.config)
	s.mcpServer.AddTool(shortURLTool.GetTool(), shortURLTool.Handle)

	listTypesTool := tools.NewListChartTypesTool()
	s.mcpServer.AddTool(listTypesTool.GetTool(), listTypesTool.Handle)
}

// Shutdown gracefully shuts down the server
func (s *ChartServer) Shutdown(ctx context.Context) error {
	if s.opsServer != nil {
		if err := s.opsServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown ops endpoint: %w", err)
		}
	}
	if err := s.renderCache.Close(); err != nil {
		return fmt.Errorf("failed to close render cache: %w", err)
	}
	return nil
}
