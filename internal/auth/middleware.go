package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	apperrors "bustrip-backend/internal/errors"
	"bustrip-backend/internal/logger"
	"bustrip-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SchedulerSecretHeader carries the shared secret of the external trip-completion scheduler
const SchedulerSecretHeader = "X-Scheduler-Secret"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, apperrors.NewAuthenticationError("Authorization header is required"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthorized(c, apperrors.NewAuthenticationError("Invalid authorization header format"))
			return
		}

		claims, userID, err := m.tokens.Validate(tokenString)
		if err != nil {
			unauthorized(c, apperrors.NewAuthenticationError("Invalid token: "+err.Error()))
			return
		}

		c.Set("user_id", userID)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)

		ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, userID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSchedulerSecret guards internal endpoints called by the external scheduler
func RequireSchedulerSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(SchedulerSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			unauthorized(c, apperrors.ErrSchedulerAuth)
			return
		}
		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*Claims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*Claims)
	return authClaims, ok
}

// unauthorized aborts with 401 and the failure envelope the handlers answer with
func unauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, service.FailureResult(err))
}
