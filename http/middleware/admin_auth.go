package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tnqbao/gau-gallery-service/config"
	"github.com/tnqbao/gau-gallery-service/utils"
)

// AdminAuthMiddleware gates every mutation behind a bearer credential:
// either the shared admin secret or a session token issued for it. Any
// mismatch, absence or malformed header fails before data access.
func AdminAuthMiddleware(cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.ExtractBearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}

		if utils.SecureCompare(token, cfg.Admin.Token) {
			c.Next()
			return
		}

		if err := utils.ParseSessionToken(token, cfg); err == nil {
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		c.Abort()
	}
}
