package types

import (
	"context"
	"encoding/json"
)

// RenderRequest describes a single chart render against the QuickChart API.
// Chart holds the serialized Chart.js configuration; the remaining fields
// map to the API's top-level render parameters.
type RenderRequest struct {
	Chart            json.RawMessage `json:"chart"`
	Width            int             `json:"width,omitempty"`
	Height           int             `json:"height,omitempty"`
	Format           string          `json:"format,omitempty"`
	BackgroundColor  string          `json:"backgroundColor,omitempty"`
	DevicePixelRatio float64         `json:"devicePixelRatio,omitempty"`
	Version          string          `json:"version,omitempty"`
}

// CacheKey returns the canonical JSON encoding of the request, used as the
// input to the render cache key.
func (r RenderRequest) CacheKey() ([]byte, error) {
	return json.Marshal(r)
}

// Renderer defines the interface for chart rendering operations
type Renderer interface {
	// BuildURL returns a GET render URL for the request.
	BuildURL(req RenderRequest) (string, error)
	// Render renders the chart and returns the image bytes.
	Render(ctx context.Context, req RenderRequest) ([]byte, error)
	// CreateShortURL creates a fixed short render URL for the request.
	CreateShortURL(ctx context.Context, req RenderRequest) (string, error)
}
