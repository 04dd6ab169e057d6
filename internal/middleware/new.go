package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"voxnav/config"
	"voxnav/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l         log.Logger
	rateLimit config.RateLimitConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func New(l log.Logger, rateLimit config.RateLimitConfig) *Middleware {
	return &Middleware{
		l:         l,
		rateLimit: rateLimit,
		limiters:  map[string]*rate.Limiter{},
	}
}
