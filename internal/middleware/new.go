package middleware

import (
	"property-listing/config"
	"property-listing/pkg/log"
	"property-listing/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

// New builds the shared middleware set. The rate limiter is only created when enabled.
func New(l log.Logger, jwtManager scope.Manager, rl config.RateLimitConfig) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
	if rl.Enabled {
		mw.limiter = newRateLimiter(rl.RequestsPerMin)
	}
	return mw
}
