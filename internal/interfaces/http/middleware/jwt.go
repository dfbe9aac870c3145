package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/playbase/backend/internal/infrastructure/auth"
	"github.com/playbase/backend/internal/interfaces/http/dto"
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID         = "user_id"
	ContextKeyIsAdmin        = "is_admin"
	ContextKeyToken          = "token"
	ContextKeyTokenExpiresAt = "token_expires_at"
)

// TokenChecker reports whether an access token has been revoked
type TokenChecker interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// Auth validates the Bearer token and stores the caller's identity on the
// request context. The blacklist check fails open so a Redis outage does
// not lock every user out.
func Auth(jwtService *auth.JWTService, blacklist TokenChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c, "missing or malformed Authorization header")
			return
		}

		claims, err := jwtService.Validate(token)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), token)
			if err != nil {
				logger.Warn("token blacklist check failed, allowing request",
					zap.Error(err),
				)
			} else if revoked {
				abortUnauthorized(c, auth.ErrTokenRevoked.Error())
				return
			}
		}

		userID, err := claims.ParseUserID()
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyIsAdmin, claims.IsAdmin())
		c.Set(ContextKeyToken, token)
		if claims.ExpiresAt != nil {
			c.Set(ContextKeyTokenExpiresAt, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireAdmin rejects requests from non-administrator accounts.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := c.Get(ContextKeyIsAdmin)
		if !ok || isAdmin != true {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "administrator access required"))
			return
		}
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
