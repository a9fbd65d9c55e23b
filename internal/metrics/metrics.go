package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hindify_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hindify_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hindify_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Pipeline metrics.
var (
	TransformsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hindify_transforms_total",
		Help: "Transform calls by surface",
	}, []string{"surface"})

	RomanizationFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hindify_romanization_fallbacks_total",
		Help: "Romanizations that fell back to the character table",
	})

	TranslationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hindify_translations_total",
		Help: "Translation calls by provider and result",
	}, []string{"provider", "result"})

	TranslationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hindify_translation_duration_seconds",
		Help:    "Translation call duration in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30},
	}, []string{"provider"})

	TranslationCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hindify_translation_cache_lookups_total",
		Help: "Translation cache lookups by result",
	}, []string{"result"})
)

// Worker metrics.
var (
	CachePrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hindify_cache_pruned_total",
		Help: "Cached translations deleted by the janitor",
	})

	CachePruneErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hindify_cache_prune_errors_total",
		Help: "Janitor prune passes that failed",
	})

	DBPoolTotalConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hindify_db_pool_total_conns",
		Help: "Total connections in the pgxpool",
	})

	DBPoolIdleConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hindify_db_pool_idle_conns",
		Help: "Idle connections in the pgxpool",
	})

	DBPoolAcquiredConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hindify_db_pool_acquired_conns",
		Help: "Acquired connections in the pgxpool",
	})

	DBPoolMaxConns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hindify_db_pool_max_conns",
		Help: "Max connections configured for the pgxpool",
	})
)
