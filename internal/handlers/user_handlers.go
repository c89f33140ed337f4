package handlers

import (
	"errors"
	"net/http"

	"github.com/01moynul/kashish-pos/internal/session"
	"github.com/gin-gonic/gin"
)

// LoginInput is the body of POST /v1/login.
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/login
func (h *Handlers) Login(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. --- Check Credentials ---
	user, err := h.Session.Login(c.Request.Context(), input.Username, input.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	if err != nil && !errors.Is(err, session.ErrPersistence) {
		h.fail(c, err)
		return
	}
	if err != nil {
		h.Log.Warn().Err(err).Msg("Session started but not saved")
	}

	// 3. --- Issue Token ---
	token, err := h.Tokens.GenerateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Logout is the handler for POST /v1/logout
func (h *Handlers) Logout(c *gin.Context) {
	err := h.Session.Logout(c.Request.Context())
	h.respond(c, http.StatusOK, "message", "Logged out", err)
}

// Me is the handler for GET /v1/me
func (h *Handlers) Me(c *gin.Context) {
	user, ok := h.Session.User()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetTheme is the handler for GET /v1/theme
func (h *Handlers) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": h.Session.Theme()})
}

// ToggleTheme is the handler for POST /v1/theme/toggle
func (h *Handlers) ToggleTheme(c *gin.Context) {
	theme, err := h.Session.ToggleTheme(c.Request.Context())
	h.respond(c, http.StatusOK, "theme", theme, err)
}
