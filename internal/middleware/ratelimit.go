package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewRateLimitHandler returns a middleware that caps request throughput with
// a single token-bucket limiter shared across all clients: rps tokens per
// second with bursts up to burst. Requests arriving without a token get 429.
// Non-positive values fall back to a permissive default.
func NewRateLimitHandler(rps, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		rps = 100
	}
	if burst <= 0 {
		burst = rps
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
