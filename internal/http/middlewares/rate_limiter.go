package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"todo-lists.com/todo-lists/internal/constants"
)

// KeyFunc picks the bucket a request is counted against.
type KeyFunc func(c echo.Context) string

// OwnerOrIP counts identified callers per owner and everyone else per client IP.
func OwnerOrIP(c echo.Context) string {
	if owner, ok := c.Get(constants.OwnerIDContextKey).(string); ok && owner != "" {
		return "owner:" + owner
	}
	return "ip:" + c.RealIP()
}

type bucket struct {
	count int
	start time.Time
}

type rateLimiter struct {
	limit     int
	window    time.Duration
	keyFunc   KeyFunc
	now       func() time.Time
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

func newRateLimiter(limit int, window time.Duration, keyFunc KeyFunc) *rateLimiter {
	if keyFunc == nil {
		keyFunc = OwnerOrIP
	}
	return &rateLimiter{
		limit:   limit,
		window:  window,
		keyFunc: keyFunc,
		now:     time.Now,
		buckets: make(map[string]*bucket),
	}
}

// RateLimiter is a fixed window counter kept in process memory.
func RateLimiter(limit int, window time.Duration, keyFunc KeyFunc) echo.MiddlewareFunc {
	return newRateLimiter(limit, window, keyFunc).middleware
}

// take counts one request against key and reports whether it is allowed.
func (l *rateLimiter) take(key string) (allowed bool, remaining int, reset time.Time) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) > l.window {
		l.sweep(now)
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	allowed = b.count < l.limit
	if allowed {
		b.count++
	}
	return allowed, l.limit - b.count, b.start.Add(l.window)
}

// sweep drops expired windows, at most once per window. Callers hold mu.
func (l *rateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) <= l.window {
		return
	}
	for key, b := range l.buckets {
		if now.Sub(b.start) > l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

func (l *rateLimiter) middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		allowed, remaining, reset := l.take(l.keyFunc(c))

		header := c.Response().Header()
		header.Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
		header.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		header.Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		}
		return next(c)
	}
}
