package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Arnobrizwan/intellinote-app/internal/auth"
	"github.com/Arnobrizwan/intellinote-app/internal/middleware"
	"github.com/Arnobrizwan/intellinote-app/internal/redis"
	"github.com/Arnobrizwan/intellinote-app/internal/repositories"
	"github.com/Arnobrizwan/intellinote-app/pkg/logger"
	"github.com/Arnobrizwan/intellinote-app/pkg/responses"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	users      repositories.UserRepository
	tokens     *auth.Manager
	sessions   *redis.Service
	bcryptCost int
}

func NewUserHandler(users repositories.UserRepository, tokens *auth.Manager, sessions *redis.Service, bcryptCost int) *UserHandler {
	return &UserHandler{
		users:      users,
		tokens:     tokens,
		sessions:   sessions,
		bcryptCost: bcryptCost,
	}
}

// TokenOut is the login response body.
type TokenOut struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates a new user account from a form-encoded body and returns
// the public profile. The password hash is never serialized.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Username string `form:"username" binding:"required"`
		Email    string `form:"email" binding:"required,email"`
		Password string `form:"password" binding:"required"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format"))
		return
	}

	if _, err := h.users.FindByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Email already registered."))
		return
	}

	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to hash password")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to register user"))
		return
	}

	user, err := h.users.Create(req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Email already registered."))
			return
		}
		logger.Log.Error().Err(err).Msg("Failed to create user")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to register user"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// Login verifies form-encoded credentials and issues an access token. An
// unknown email and a wrong password produce the same response so accounts
// cannot be enumerated.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `form:"email" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format"))
		return
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Incorrect email or password"))
		return
	}

	token, err := h.tokens.IssueToken(user.ID)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to issue token")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to issue token"))
		return
	}

	c.JSON(http.StatusOK, TokenOut{AccessToken: token, TokenType: "bearer"})
}

// Logout revokes the presented token for its remaining lifetime. Without a
// session store the token simply keeps running until expiry.
func (h *UserHandler) Logout(c *gin.Context) {
	claimsVal, exists := c.Get(middleware.TokenClaims)
	if !exists {
		c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Authentication required"))
		return
	}
	claims := claimsVal.(*auth.Claims)

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := h.sessions.RevokeToken(c.Request.Context(), claims.ID, ttl); err != nil {
		logger.Log.Error().Err(err).Msg("Failed to revoke token")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to log out"))
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Logged out", nil))
}

// notFound reports whether a store error means the record is absent.
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
