package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	xclog "github.com/averycrespi/quickchart-mcp/internal/log"
	"github.com/averycrespi/quickchart-mcp/internal/quickchart"
	"github.com/averycrespi/quickchart-mcp/internal/server"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

func main() {
	var (
		baseURL          = flag.String("base-url", quickchart.DefaultBaseURL, "Base URL of the QuickChart API")
		apiKey           = flag.String("api-key", "", "QuickChart API key (falls back to QUICKCHART_API_KEY)")
		outputDir        = flag.String("output-dir", "charts", "Directory for downloaded chart images")
		cacheDir         = flag.String("cache-dir", "", "Directory for the on-disk render cache (memory cache if unset)")
		httpAddr         = flag.String("http-addr", "", "Listen address for health and metrics endpoints (disabled if unset)")
		logLevel         = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		timeout          = flag.Duration("timeout", 30*time.Second, "QuickChart request timeout")
		rateLimit        = flag.Float64("rate", 10, "Max QuickChart requests per second")
		rateBurst        = flag.Int("burst", 20, "Max QuickChart request burst")
		disableShortURLs = flag.Bool("disable-short-urls", false, "Never POST chart configs to the short URL endpoint")
	)
	flag.Parse()

	xclog.Configure(xclog.Config{Level: *logLevel})
	log := xclog.WithComponent("main")

	if *apiKey == "" {
		*apiKey = os.Getenv("QUICKCHART_API_KEY")
	}

	config := types.Config{
		BaseURL:          *baseURL,
		APIKey:           *apiKey,
		OutputDir:        *outputDir,
		CacheDir:         *cacheDir,
		HTTPAddr:         *httpAddr,
		LogLevel:         *logLevel,
		Timeout:          *timeout,
		RateLimit:        *rateLimit,
		RateBurst:        *rateBurst,
		DisableShortURLs: *disableShortURLs,
	}

	if absPath, err := filepath.Abs(config.OutputDir); err == nil {
		config.OutputDir = absPath
	}
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", config.OutputDir).Msg("invalid output directory")
	}

	mcpServer, err := server.NewChartServer(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- mcpServer.Serve(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mcpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
