package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the dashboard routes behind a bearer token. The token
// comes from the ADMIN_TOKEN environment variable; an empty token disables
// all mutating routes rather than leaving them open.
func RequireAdmin(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if strings.HasPrefix(strings.ToLower(header), "bearer ") {
			header = strings.TrimSpace(header[7:])
		}

		if token == "" || header == "" ||
			subtle.ConstantTimeCompare([]byte(header), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Next()
	}
}
