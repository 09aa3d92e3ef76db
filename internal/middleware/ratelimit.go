package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Limiter enforces a per-client token bucket. Buckets refill continuously at
// the configured per-minute rate and idle clients expire from the store, so
// memory stays bounded under churn.
type Limiter struct {
	mu       sync.Mutex
	perMin   int
	limit    rate.Limit
	clients  *cache.Cache
	lifetime time.Duration
}

// NewLimiter creates a limiter allowing perMinute requests per client.
func NewLimiter(perMinute int) *Limiter {
	if perMinute <= 0 {
		perMinute = 30
	}
	lifetime := 10 * time.Minute
	return &Limiter{
		perMin:   perMinute,
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		clients:  cache.New(lifetime, 2*lifetime),
		lifetime: lifetime,
	}
}

// Check consumes one token for clientID and reports whether the request is
// allowed along with the remaining budget.
func (l *Limiter) Check(clientID string) (allowed bool, remaining int) {
	l.mu.Lock()
	var bucket *rate.Limiter
	if v, ok := l.clients.Get(clientID); ok {
		bucket = v.(*rate.Limiter)
	} else {
		bucket = rate.NewLimiter(l.limit, l.perMin)
		l.clients.Set(clientID, bucket, l.lifetime)
	}
	l.mu.Unlock()

	allowed = bucket.Allow()
	remaining = int(bucket.Tokens())
	if remaining < 0 {
		remaining = 0
	}
	return allowed, remaining
}

// RateLimit throttles requests per client IP and decorates responses with
// the X-RateLimit headers clients already expect.
func RateLimit(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIPForRateLimit(r)
			allowed, remaining := l.Check(ip)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.perMin))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !allowed {
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIPForRateLimit(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		for _, part := range strings.Split(xf, ",") {
			ip := strings.TrimSpace(part)
			if ip == "" {
				continue
			}
			if net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		if net.ParseIP(host) != nil {
			return host
		}
	} else if net.ParseIP(r.RemoteAddr) != nil {
		return r.RemoteAddr
	}

	return r.RemoteAddr
}
