package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"voxnav/pkg/response"
)

// RateLimit throttles turns per caller. The caller key is the user_id
// field when the body carried one, falling back to the client IP.
// Each caller gets an independent token bucket.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		if !m.limiterFor(key).Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *Middleware) limiterFor(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	limiter, ok := m.limiters[key]
	if !ok {
		perSecond := rate.Limit(float64(m.rateLimit.TurnsPerMinute) / 60.0)
		limiter = rate.NewLimiter(perSecond, m.rateLimit.Burst)
		m.limiters[key] = limiter
	}
	return limiter
}
