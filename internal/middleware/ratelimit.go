package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/BruksfildServices01/professional-agenda/internal/httperr"
)

// Limiter decides whether one more request for key fits the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

const defaultIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter is a per-key token bucket kept in process memory. Keys idle
// for longer than the TTL are evicted, so the map only holds recent callers.
type MemoryLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	perMin    int
	idleTTL   time.Duration
	lastSweep time.Time
}

func NewMemoryLimiter(perMin int) *MemoryLimiter {
	return NewMemoryLimiterWithTTL(perMin, defaultIdleTTL)
}

func NewMemoryLimiterWithTTL(perMin int, idleTTL time.Duration) *MemoryLimiter {
	if perMin <= 0 {
		perMin = 120
	}
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &MemoryLimiter{
		visitors:  make(map[string]*visitor),
		perMin:    perMin,
		idleTTL:   idleTTL,
		lastSweep: time.Now(),
	}
}

func (m *MemoryLimiter) get(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if now.Sub(m.lastSweep) >= m.idleTTL {
		m.sweep(now)
	}

	v, ok := m.visitors[key]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.perMin)), m.perMin),
		}
		m.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter
}

// sweep drops idle visitors. Callers hold m.mu.
func (m *MemoryLimiter) sweep(now time.Time) {
	for key, v := range m.visitors {
		if now.Sub(v.lastSeen) >= m.idleTTL {
			delete(m.visitors, key)
		}
	}
	m.lastSweep = now
}

// Len reports how many keys are currently tracked.
func (m *MemoryLimiter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.visitors)
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	return m.get(key).Allow(), nil
}

// RateLimit rejects callers over budget with 429. Limiter failures let
// the request through.
func RateLimit(l Limiter, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		ok, err := l.Allow(c.Request.Context(), ip)
		if err != nil {
			log.Warn("rate limiter error", zap.String("ip", ip), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			log.Warn("rate limit exceeded", zap.String("ip", ip))
			httperr.TooManyRequests(c, "rate_limited", "Muitas requisições. Tente novamente em instantes.")
			return
		}

		c.Next()
	}
}

var _ Limiter = (*MemoryLimiter)(nil)
