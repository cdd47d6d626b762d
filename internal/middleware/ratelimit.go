package middleware

import (
	"net/http"
	"sync"
	"time"

	"fleet-equipment-tracker/internal/logger"
	"fleet-equipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Buckets idle this long are evicted. Demand checks come in bursts from
// planners, so idle clients disappear quickly.
const clientIdleTTL = 15 * time.Minute

// ipRateLimiter keeps one token bucket per client IP and evicts buckets
// that have gone idle.
type ipRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	limit   rate.Limit
	burst   int
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	rl := &ipRateLimiter{
		clients: make(map[string]*clientBucket),
		limit:   rate.Limit(rps),
		burst:   burst,
	}

	go rl.evictIdle()

	return rl
}

func (rl *ipRateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = b
	}
	b.lastSeen = time.Now()

	return b.limiter.Allow()
}

func (rl *ipRateLimiter) evictIdle() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-clientIdleTTL)

		rl.mu.Lock()
		for ip, b := range rl.clients {
			if b.lastSeen.Before(cutoff) {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitMiddleware throttles each client IP to rps requests per
// second with the given burst. One limiter instance covers the whole
// API, demand checks included.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiter := newIPRateLimiter(rps, burst)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !limiter.allow(ip) {
			logger.Warn("Client over rate limit",
				zap.String("request_id", GetRequestID(c)),
				zap.String("client_ip", ip),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)

			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
