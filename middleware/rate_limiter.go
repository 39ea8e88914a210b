package middleware

import (
	"sync"
	"time"

	"casexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter holds one token bucket per client IP.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows max requests per window for each IP, refilling evenly.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	if max < 1 {
		max = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *RateLimiter) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[ip] = limiter
	}
	return limiter
}

// Allow reports whether ip may make another request now.
func (s *RateLimiter) Allow(ip string) bool {
	return s.getLimiter(ip).Allow()
}

// RateLimitMiddleware limits requests per IP address.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := GetClientIP(c)
		if !limiter.Allow(ip) {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			utils.JSONError(c, utils.KindRateLimited, "Rate limit exceeded. Try again later.")
			return
		}
		c.Next()
	}
}
