package middleware

import (
	"net/http"
	"strings"

	"github.com/01moynul/kashish-pos/internal/auth"
	"github.com/01moynul/kashish-pos/internal/session"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a gin.HandlerFunc that acts as our "security guard".
// A request passes only with a valid Bearer token for the logged-in owner;
// logging out invalidates every token issued before.
func AuthMiddleware(tokens *auth.Tokens, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. --- Get Authorization Header ---
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		// 2. --- Validate Token ---
		username, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 3. --- Check Session ---
		user, ok := sessions.User()
		if !ok || user.Username != username {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			c.Abort()
			return
		}

		// 4. --- Success ---
		c.Set("username", username)
		c.Next()
	}
}
