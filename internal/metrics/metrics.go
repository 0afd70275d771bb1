package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quickchart_mcp",
		Name:      "renders_total",
		Help:      "Total chart render attempts by tool and outcome",
	}, []string{"tool", "status"})

	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "quickchart_mcp",
		Name:      "render_duration_seconds",
		Help:      "Latency of QuickChart render calls",
		Buckets:   prometheus.DefBuckets,
	})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quickchart_mcp",
		Name:      "cache_hits_total",
		Help:      "Render cache hits",
	})

	CacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quickchart_mcp",
		Name:      "cache_misses_total",
		Help:      "Render cache misses",
	})

	ShortURLsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "quickchart_mcp",
		Name:      "short_urls_total",
		Help:      "Short render URLs created",
	})
)
