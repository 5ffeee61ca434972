package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/lagranja/vetstore/internal/platform/httpx"
)

// Middleware enforces the limiter per client IP. It always attaches the
// X-RateLimit-* headers; exhausted budgets answer 429 with Retry-After.
// Expects chi's RealIP middleware to have resolved RemoteAddr already.
func Middleware(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()
			res := l.Check(clientIdentifier(r), now)

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed {
				retryAfter := int(res.ResetAt.Sub(now).Seconds()) + 1
				h.Set("Retry-After", strconv.Itoa(retryAfter))
				httpx.Problem(w, http.StatusTooManyRequests, "Too Many Requests", "request budget exceeded, wait before retrying")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIdentifier(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
	return host
}
