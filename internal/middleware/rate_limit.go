package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"starseed-server/internal/shared/config"
	"starseed-server/internal/shared/errors"
	"starseed-server/internal/shared/response"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// limitStore decides whether the client identified by key may proceed.
type limitStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type RateLimiter struct {
	config config.RateLimitConfig
	store  limitStore
	name   string
}

// NewRateLimiter keeps per-client token buckets in process memory.
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	store := newMemoryStore(cfg)
	if cfg.Enabled {
		go store.cleanupClients()
	}
	return &RateLimiter{config: cfg, store: store, name: "memory"}
}

// NewRedisRateLimiter shares fixed one-second windows across server
// instances through Redis.
func NewRedisRateLimiter(cfg config.RateLimitConfig, client goredis.Cmdable) *RateLimiter {
	return &RateLimiter{config: cfg, store: newRedisStore(cfg, client), name: "redis"}
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip := getClientIP(r, rl.config.TrustProxy)

		logger := slog.With(
			"middleware", "rate_limit",
			"store", rl.name,
			"client_ip", ip,
			"method", r.Method,
			"path", r.URL.Path,
		)

		allowed, err := rl.store.Allow(r.Context(), ip)
		if err != nil {
			// Fail open when the store is unreachable.
			logger.Warn("Rate limit store unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			w.Header().Set("Retry-After", "1")
			response.Error(w, r, logger, errors.RateLimited("rate limit exceeded"))
			return
		}

		logger.Debug("Request allowed through rate limiter")
		next.ServeHTTP(w, r)
	})
}

type memoryStore struct {
	rps     float64
	burst   int
	clients map[string]*rate.Limiter
	mu      sync.RWMutex
}

func newMemoryStore(cfg config.RateLimitConfig) *memoryStore {
	return &memoryStore{
		rps:     cfg.RequestsPerSecond,
		burst:   cfg.BurstSize,
		clients: make(map[string]*rate.Limiter),
	}
}

func (m *memoryStore) Allow(_ context.Context, key string) (bool, error) {
	return m.getLimiter(key).Allow(), nil
}

func (m *memoryStore) getLimiter(ip string) *rate.Limiter {
	m.mu.RLock()
	limiter, exists := m.clients[ip]
	m.mu.RUnlock()
	if exists {
		return limiter
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if limiter, exists = m.clients[ip]; !exists {
		limiter = rate.NewLimiter(rate.Limit(m.rps), m.burst)
		m.clients[ip] = limiter
	}
	return limiter
}

func (m *memoryStore) cleanupClients() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		// A full bucket means the client has been idle long enough to forget.
		for ip, limiter := range m.clients {
			if limiter.TokensAt(time.Now()) == float64(m.burst) {
				delete(m.clients, ip)
			}
		}
		m.mu.Unlock()
	}
}

const redisKeyPrefix = "ratelimit"

type redisStore struct {
	client goredis.Cmdable
	limit  int64
	now    func() time.Time
}

func newRedisStore(cfg config.RateLimitConfig, client goredis.Cmdable) *redisStore {
	limit := max(int64(math.Ceil(cfg.RequestsPerSecond)), int64(cfg.BurstSize))
	return &redisStore{client: client, limit: limit, now: time.Now}
}

func (s *redisStore) Allow(ctx context.Context, key string) (bool, error) {
	window := s.now().Unix()
	redisKey := fmt.Sprintf("%s:%s:%d", redisKeyPrefix, key, window)

	var incr *goredis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, 2*time.Second)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to count request: %w", err)
	}

	return incr.Val() <= s.limit, nil
}

func getClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// X-Forwarded-For can be comma-separated; first entry is the client
			if i := strings.IndexByte(xff, ','); i != -1 {
				return strings.TrimSpace(xff[:i])
			}
			return xff
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}

	// Strip port from RemoteAddr (e.g. "192.168.1.1:12345" -> "192.168.1.1")
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
