package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hackhub-api/internal/auth"
	"hackhub-api/internal/store"

	"github.com/gin-gonic/gin"
)

// emailKey is the gin context key holding the verified identity email.
const emailKey = "identity_email"

// Identity verifies the Bearer token and stores the signed-in email on the
// context. Requests without a valid identity are rejected with 401.
func Identity(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			slog.Debug("Rejected identity token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// AdminRequired checks the signed-in email against the admin allow-list.
// Membership is re-read on every request; there is no session-level caching
// of admin status.
func AdminRequired(admins store.AdminStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := IdentityEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		isAdmin, err := admins.IsAdmin(c.Request.Context(), email)
		if err != nil {
			slog.Error("Admin lookup failed", "error", err, "email", email)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden - Admin access required"})
			return
		}

		c.Next()
	}
}

// IdentityEmail returns the verified email for the current request, or ""
// if the Identity middleware did not run.
func IdentityEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}
