package handler

import (
	"net/http"
	"strings"

	"marketplace-server/internal/apierrors"
	"marketplace-server/internal/auth/processor"
	"marketplace-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	authProcessor processor.AuthProcessor
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Role      string `json:"role" binding:"omitempty,oneof=vendor ops superadmin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// HandleSignup handles POST /api/auth/signup
func (h *Handler) HandleSignup(c *gin.Context) {
	ctx := c.Request.Context()
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	user, err := h.authProcessor.Signup(ctx, req.FirstName, req.LastName, req.Email, req.Password, req.Role)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// HandleLogin handles POST /api/auth/login
func (h *Handler) HandleLogin(c *gin.Context) {
	ctx := c.Request.Context()
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	token, err := h.authProcessor.Login(ctx, req.Email, req.Password)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// HandleJWTMiddleware validates the bearer token and injects User-ID and
// User-Role into the gin context.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}
	c.Set("User-ID", sub)
	c.Set("User-Role", claims.Role)
	c.Next()
}

// HandleOptionalJWTMiddleware resolves the caller from a bearer token when
// one is present but lets anonymous requests through. Used on public
// endpoints that behave better for signed-in users.
func (h *Handler) HandleOptionalJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		c.Next()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.authProcessor.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		c.Next()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil {
		c.Next()
		return
	}
	c.Set("User-ID", sub)
	c.Set("User-Role", claims.Role)
	c.Next()
}

// GetUserInfo handles GET /api/protected/user
func (h *Handler) GetUserInfo(c *gin.Context) {
	ctx := c.Request.Context()
	userID, ok := CallerID(c)
	if !ok {
		h.logger.Error(ctx, "failed to get user from context", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user from context"})
		return
	}

	user, err := h.authProcessor.GetUserByID(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CallerID extracts the authenticated user's id set by the JWT middleware.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := c.Get("User-ID")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// CallerRole extracts the authenticated user's role set by the JWT middleware.
func CallerRole(c *gin.Context) string {
	raw, ok := c.Get("User-Role")
	if !ok {
		return ""
	}
	role, _ := raw.(string)
	return role
}
