package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ribgsilva/notekeeper/platform/web/handler"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests above rps requests per second, allowing bursts of burst requests
func RateLimit(log *zap.SugaredLogger, rps, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 100
	}
	if burst <= 0 {
		burst = 10
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(ctx *gin.Context) {
		if !limiter.Allow() {
			log.Warnw("rate limit exceeded", "path", ctx.FullPath(), "remote", ctx.ClientIP())
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, handler.Error{Message: "too many requests"})
			return
		}
		ctx.Next()
	}
}
