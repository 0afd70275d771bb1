package types

import "time"

// Config represents the configuration for the quickchart-mcp server
type Config struct {
	BaseURL          string        `json:"base_url"`
	APIKey           string        `json:"api_key,omitempty"`
	OutputDir        string        `json:"output_dir"`
	CacheDir         string        `json:"cache_dir,omitempty"`
	HTTPAddr         string        `json:"http_addr,omitempty"`
	LogLevel         string        `json:"log_level,omitempty"`
	Timeout          time.Duration `json:"timeout,omitempty"`
	RateLimit        float64       `json:"rate_limit,omitempty"`
	RateBurst        int           `json:"rate_burst,omitempty"`
	DisableShortURLs bool          `json:"disable_short_urls,omitempty"`
}
