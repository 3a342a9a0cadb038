package middleware

import (
	"net/http"

	"leaguehub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the HTTP-only cookie carrying the signed session token.
const SessionCookieName = "token"

// AuthRequired is a Gin middleware that resolves the session cookie to
// an authenticated identity, or rejects with 401.
func AuthRequired(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("isAdmin", claims.IsAdmin)

		c.Next()
	}
}

// AdminRequired layers an elevated-privilege check on top of
// AuthRequired; it must run after it.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists || !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentActor extracts the viewer identity set by AuthRequired. The
// identity always travels as an explicit value, never ambient state.
func CurrentActor(c *gin.Context) (service.Actor, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return service.Actor{}, false
	}
	isAdmin, _ := c.Get("isAdmin")
	admin, _ := isAdmin.(bool)
	return service.Actor{UserID: userID.(string), IsAdmin: admin}, true
}
