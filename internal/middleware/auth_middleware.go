package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Arnobrizwan/intellinote-app/internal/auth"
	"github.com/Arnobrizwan/intellinote-app/internal/redis"
	"github.com/Arnobrizwan/intellinote-app/internal/repositories"
	"github.com/Arnobrizwan/intellinote-app/pkg/logger"
	"github.com/Arnobrizwan/intellinote-app/pkg/responses"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set for downstream handlers.
const (
	PrincipalKey = "principal"
	TokenClaims  = "claims"
)

// AuthMiddleware rejects requests without a live bearer token and resolves
// the token to its User before any handler runs. The 401 bodies are
// deliberately uniform: a caller cannot tell a forged token from an expired
// or revoked one.
func AuthMiddleware(tokens *auth.Manager, users repositories.UserRepository, sessions *redis.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Authentication required"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Could not validate credentials"))
			c.Abort()
			return
		}

		if sessions.IsRevoked(c.Request.Context(), claims.ID) {
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Could not validate credentials"))
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Token outlived the account.
				c.JSON(http.StatusNotFound, responses.NewErrorResponse("User not found"))
				c.Abort()
				return
			}
			logger.Log.Error().Err(err).Msg("Failed to resolve principal")
			c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to fetch user data"))
			c.Abort()
			return
		}

		c.Set(PrincipalKey, user)
		c.Set(TokenClaims, claims)
		c.Next()
	}
}
