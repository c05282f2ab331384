package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs-lzh/hotel-booking/internal/cache"
)

type RateLimiter interface {
	Allow(ctx context.Context, userID uint, scope string, limit int, window time.Duration) (remaining int, err error)
}

// RateLimit caps how many requests a signed-in user makes per window in the
// given scope. It must run after Authenticate. When the limiter itself fails
// the request is let through.
func RateLimit(limiter RateLimiter, scope string, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if limit <= 0 {
			ctx.Next()
			return
		}

		remaining, err := limiter.Allow(ctx.Request.Context(), UserID(ctx), scope, limit, window)
		if err != nil {
			if errors.Is(err, cache.ErrRateLimited) {
				ctx.Header("Retry-After", strconv.Itoa(int(window.Seconds())))
				ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"error":   "Too many requests",
					"message": "Please wait before changing your booking again",
				})
				return
			}
			logger.Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			ctx.Next()
			return
		}

		ctx.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		ctx.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		ctx.Next()
	}
}
