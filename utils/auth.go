package utils

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExtractBearerToken pulls the credential out of the Authorization header.
// Returns "" for an absent or malformed header.
func ExtractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Fields(authHeader)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}

// SecureCompare performs constant-time string comparison. This MUST be used
// when comparing the admin secret.
func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
