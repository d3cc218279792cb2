package router

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/unifydesk/internal/pkg/ratelimit"
)

// RateLimit returns a middleware throttling requests per client IP.
//
// When the limiter is unavailable the request is allowed through; throttling
// is protection, not a dependency.
func RateLimit(limiter ratelimit.Limiter, rule ratelimit.Rule) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil {
				next.ServeHTTP(w, r)
				return
			}

			key := r.RemoteAddr
			if host, _, err := net.SplitHostPort(key); err == nil {
				key = host
			}

			res, err := limiter.Allow(r.Context(), key, rule)
			if err != nil {
				slog.WarnContext(r.Context(), "rate limiter unavailable, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if !res.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds())))
				writeJSON(w, errorResponse{Message: "Too many requests. Please try again later."}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
