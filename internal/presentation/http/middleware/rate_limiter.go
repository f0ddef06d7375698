package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientRateLimiter throttles requests per client IP so one runaway caller
// cannot starve the single-writer ledger.
type ClientRateLimiter struct {
	limiters    map[string]*limiterEntry
	mu          sync.Mutex
	rate        rate.Limit
	burst       int
	cleanupTick time.Duration
	entryTTL    time.Duration
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterConfig holds configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	CleanupInterval   time.Duration
	EntryTTL          time.Duration
}

// NewClientRateLimiter creates a new per-client rate limiter
func NewClientRateLimiter(cfg RateLimiterConfig) *ClientRateLimiter {
	rl := &ClientRateLimiter{
		limiters:    make(map[string]*limiterEntry),
		rate:        rate.Limit(cfg.RequestsPerSecond),
		burst:       cfg.BurstSize,
		cleanupTick: cfg.CleanupInterval,
		entryTTL:    cfg.EntryTTL,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *ClientRateLimiter) getLimiter(clientIP string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[clientIP]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[clientIP] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (rl *ClientRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupTick)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-rl.entryTTL)
		rl.mu.Lock()
		for ip, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware rejects requests above the configured rate with 429.
func (rl *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
