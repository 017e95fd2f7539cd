package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/nightowldevx/lakbayregion8/internal/metrics"
)

// NewRateLimitByIP allows requests per window for each client IP and answers
// 429 with a JSON error body past the limit. route labels the rejection metric.
// Wire chimiddleware.RealIP first when running behind a proxy.
func NewRateLimitByIP(requests int, window time.Duration, route string) func(http.Handler) http.Handler {
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RateLimitHits.WithLabelValues(route).Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"too many requests, slow down"}}`))
		}),
	)
}
