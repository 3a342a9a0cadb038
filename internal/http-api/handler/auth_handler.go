package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"leaguehub/internal/http-api/dto"
	"leaguehub/internal/http-api/middleware"
	"leaguehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
	log         *slog.Logger
}

func NewAuthHandler(authService service.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// RegisterRoutes registers auth routes on the given group.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/me", authRequired, h.Me)
}

// Register creates a new account.
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}

	_, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists."})
		case service.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			serverError(c, h.log, "register failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully."})
}

// Login verifies credentials and sets the session cookie.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}

	token, _, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials."})
		case service.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			serverError(c, h.log, "login failed", err)
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token,
		int(h.authService.SessionTTL().Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged in successfully."})
}

// Logout clears the session cookie.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

// Me returns the authenticated user's profile.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	user, err := h.authService.GetProfile(userID.(string))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		serverError(c, h.log, "profile lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	})
}
