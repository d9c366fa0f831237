package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ipLimiterTTL is how long an idle client's bucket is kept before eviction.
const ipLimiterTTL = 3 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. Idle entries are swept
// out so the map does not grow with every address ever seen.
type RateLimiter struct {
	limit     rate.Limit
	burst     int
	ips       map[string]*ipLimiter
	mu        sync.Mutex
	lastSweep time.Time
}

// NewRateLimiter allows burst requests at once and perSecond requests
// sustained, per client IP.
func NewRateLimiter(burst int, perSecond int) *RateLimiter {
	return &RateLimiter{
		limit:     rate.Limit(perSecond),
		burst:     burst,
		ips:       make(map[string]*ipLimiter),
		lastSweep: time.Now(),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rl.mu.Lock()
		if now.Sub(rl.lastSweep) > ipLimiterTTL {
			for addr, entry := range rl.ips {
				if now.Sub(entry.lastSeen) > ipLimiterTTL {
					delete(rl.ips, addr)
				}
			}
			rl.lastSweep = now
		}

		entry, exists := rl.ips[ip]
		if !exists {
			entry = &ipLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
			rl.ips[ip] = entry
		}
		entry.lastSeen = now
		rl.mu.Unlock()

		if !entry.limiter.Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}
