package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"

	"collegeblog/internal/logger"
)

const maxTrackedIPs = 10000

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	mu  sync.Mutex
	ips map[string]*rate.Limiter
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		// reset instead of growing without bound
		if len(i.ips) >= maxTrackedIPs {
			i.ips = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}

	return limiter
}

// RateLimit rejects requests over the per-IP budget with 429. Buckets are keyed
// by the connected peer, so client supplied forwarding headers cannot pick one.
func RateLimit(limiter *IPRateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !limiter.GetLimiter(ip).Allow() {
				logger.Log.Warnw("rate limit exceeded", "ip", ip, "path", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"code":   "rate_limited",
					"detail": "Rate limit exceeded. Please try again later.",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	addr := PeerAddr(r)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
