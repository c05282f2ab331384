package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qs-lzh/hotel-booking/internal/service"
)

const userIDKey = "userID"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (userID uint, err error)
}

// Authenticate rejects requests without a bearer token that belongs to an
// open session, and stores the user id for the handlers.
func Authenticate(auth Authenticator, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(ctx)
			return
		}

		userID, err := auth.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthorized) {
				logger.Error("failed to authenticate request", zap.Error(err))
			}
			abortUnauthorized(ctx)
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

func UserID(ctx *gin.Context) uint {
	return ctx.GetUint(userIDKey)
}

func abortUnauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "Unauthorized",
		"message": "You must be signed in to continue",
	})
}
