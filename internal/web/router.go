package web

import (
	"log/slog"
	"net/http"

	"github.com/jusunglee/hindify/internal/ratelimit"
	"github.com/jusunglee/hindify/internal/web/handlers"
	"github.com/jusunglee/hindify/internal/web/middleware"
)

const maxBodyBytes = 64 << 10

type Router struct {
	transformer    handlers.Transformer
	log            *slog.Logger
	allowedOrigins []string
	rateLimiter    *ratelimit.Limiter
}

func NewRouter(transformer handlers.Transformer, log *slog.Logger, allowedOrigins []string, limiter *ratelimit.Limiter) *Router {
	return &Router{
		transformer:    transformer,
		log:            log,
		allowedOrigins: allowedOrigins,
		rateLimiter:    limiter,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	transformHandler := handlers.NewTransformHandler(r.transformer, r.log)

	api := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h,
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(r.rateLimiter),
			middleware.MaxBytes(maxBodyBytes),
			middleware.CacheControl("no-store"),
		)
	}

	mux.Handle("POST /api/v1/transform", api(transformHandler.Transform))
	mux.Handle("POST /api/v1/transliterate", api(transformHandler.Transliterate))
	mux.Handle("POST /api/v1/romanize", api(transformHandler.Romanize))
	mux.HandleFunc("GET /health", handlers.Health)

	return middleware.CORS(r.allowedOrigins)(mux)
}
