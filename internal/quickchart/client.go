package quickchart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	xclog "github.com/averycrespi/quickchart-mcp/internal/log"
	"github.com/averycrespi/quickchart-mcp/pkg/types"
)

const (
	// DefaultBaseURL is the public QuickChart endpoint
	DefaultBaseURL = "https://quickchart.io"

	// MaxGetURLLength is the longest GET render URL the API accepts.
	// Longer configs must go through the short URL endpoint.
	MaxGetURLLength = 16384

	defaultTimeout   = 30 * time.Second
	defaultRate      = rate.Limit(10)
	defaultBurst     = 20
	retryBackoff     = 500 * time.Millisecond
	maxErrorBodySize = 512
)

var _ types.Renderer = &Client{}

// Client talks to the QuickChart render API
type Client struct {
	base    string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates a QuickChart client from the server configuration
func New(cfg types.Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	limit := rate.Limit(cfg.RateLimit)
	if limit <= 0 {
		limit = defaultRate
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &Client{
		base:    strings.TrimRight(base, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
		log:     xclog.WithComponent("quickchart"),
	}
}

// BuildURL returns a GET render URL for the request
func (c *Client) BuildURL(req types.RenderRequest) (string, error) {
	q := url.Values{}
	q.Set("c", string(req.Chart))
	if req.Width > 0 {
		q.Set("w", strconv.Itoa(req.Width))
	}
	if req.Height > 0 {
		q.Set("h", strconv.Itoa(req.Height))
	}
	if req.Format != "" && req.Format != "png" {
		q.Set("f", req.Format)
	}
	if req.BackgroundColor != "" {
		q.Set("bkg", req.BackgroundColor)
	}
	if req.DevicePixelRatio > 0 {
		q.Set("devicePixelRatio", strconv.FormatFloat(req.DevicePixelRatio, 'f', -1, 64))
	}
	if req.Version != "" {
		q.Set("v", req.Version)
	}
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}

	u := c.base + "/chart?" + q.Encode()
	if len(u) > MaxGetURLLength {
		return "", &URLTooLongError{Length: len(u), Limit: MaxGetURLLength}
	}
	return u, nil
}

// renderBody is the POST /chart request payload.
type renderBody struct {
	Chart            json.RawMessage `json:"chart"`
	Width            int             `json:"width,omitempty"`
	Height           int             `json:"height,omitempty"`
	Format           string          `json:"format,omitempty"`
	BackgroundColor  string          `json:"backgroundColor,omitempty"`
	DevicePixelRatio float64         `json:"devicePixelRatio,omitempty"`
	Version          string          `json:"version,omitempty"`
	Key              string          `json:"key,omitempty"`
}

// Render renders the chart via POST /chart and returns the image bytes
func (c *Client) Render(ctx context.Context, req types.RenderRequest) ([]byte, error) {
	res, err := c.post(ctx, c.base+"/chart", c.body(req))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	img, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read render response: %w", err)
	}
	c.log.Debug().Int("bytes", len(img)).Str("format", req.Format).Msg("chart rendered")
	return img, nil
}

// CreateShortURL creates a fixed short render URL via POST /chart/create
func (c *Client) CreateShortURL(ctx context.Context, req types.RenderRequest) (string, error) {
	res, err := c.post(ctx, c.base+"/chart/create", c.body(req))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var p struct {
		Success bool   `json:"success"`
		URL     string `json:"url"`
	}
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return "", fmt.Errorf("decode short URL response: %w", err)
	}
	if !p.Success || p.URL == "" {
		return "", &APIError{StatusCode: res.StatusCode, Message: "short URL creation was not successful"}
	}
	return p.URL, nil
}

func (c *Client) body(req types.RenderRequest) renderBody {
	return renderBody{
		Chart:            req.Chart,
		Width:            req.Width,
		Height:           req.Height,
		Format:           req.Format,
		BackgroundColor:  req.BackgroundColor,
		DevicePixelRatio: req.DevicePixelRatio,
		Version:          req.Version,
		Key:              c.apiKey,
	}
}

// post sends a JSON POST, retrying once on 5xx or transport errors.
func (c *Client) post(ctx context.Context, u string, body renderBody) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			c.log.Warn().Err(lastErr).Str("url", u).Msg("retrying quickchart request")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if res.StatusCode < 200 || res.StatusCode > 299 {
			apiErr := &APIError{StatusCode: res.StatusCode, Message: readErrorBody(res.Body)}
			res.Body.Close()
			if !apiErr.Retryable() {
				return nil, apiErr
			}
			lastErr = apiErr
			continue
		}
		return res, nil
	}

	var apiErr *APIError
	if errors.As(lastErr, &apiErr) {
		return nil, apiErr
	}
	return nil, fmt.Errorf("quickchart request failed: %w", lastErr)
}

// readErrorBody captures a truncated error body for diagnostics.
func readErrorBody(r io.Reader) string {
	buf, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(buf))
}
