package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/amalfamous/QuickCRM/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ipLimiter is a sliding-window counter keyed by client IP. Both the global
// API limiter and the stricter login limiter are instances of it; every
// instance registers itself with the shared purge loop.
type ipLimiter struct {
	mu      sync.Mutex
	windows map[string]*ipWindow
	limit   int
	window  time.Duration
	message string
}

type ipWindow struct {
	count int
	until time.Time
}

func newIPLimiter(limit int, window time.Duration, message string) *ipLimiter {
	l := &ipLimiter{
		windows: make(map[string]*ipWindow),
		limit:   limit,
		window:  window,
		message: message,
	}
	registerLimiter(l)
	return l
}

// allow counts one request for ip. When the window is exceeded it returns
// false plus the instant the window reopens.
func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[ip]
	if !ok || now.After(w.until) {
		w = &ipWindow{until: now.Add(l.window)}
		l.windows[ip] = w
	}
	w.count++
	return w.count <= l.limit, w.until
}

// purge drops expired windows and reports how many were removed.
func (l *ipLimiter) purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for ip, w := range l.windows {
		if now.After(w.until) {
			delete(l.windows, ip)
			n++
		}
	}
	return n
}

func (l *ipLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, until := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", until.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.message))
			return
		}
		c.Next()
	}
}

// RateLimiter returns the general API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window, "Trop de requêtes. Réessayez dans un instant.").middleware()
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute, "Trop de tentatives de connexion. Réessayez dans 1 minute.").middleware()
}

// ── Purge loop ───────────────────────────────────────────────────────────────
// One goroutine sweeps every limiter so idle IPs do not accumulate.

const purgeInterval = 5 * time.Minute

var (
	limitersMu sync.Mutex
	limiters   []*ipLimiter
	purgeOnce  sync.Once
)

func registerLimiter(l *ipLimiter) {
	limitersMu.Lock()
	limiters = append(limiters, l)
	limitersMu.Unlock()
	purgeOnce.Do(func() { go purgeLoop() })
}

func purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		limitersMu.Lock()
		active := make([]*ipLimiter, len(limiters))
		copy(active, limiters)
		limitersMu.Unlock()

		purged := 0
		for _, l := range active {
			purged += l.purge(now)
		}
		if purged > 0 {
			log.Debug().Int("entries_purged", purged).Msg("rate limiter windows purged")
		}
	}
}
