package middleware

import (
	"net/http"
	"strings"

	"fleet-equipment-tracker/internal/config"
	"fleet-equipment-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates bearer tokens signed with the shared secret
// from configuration. Mutating fleet routes sit behind it.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.JWT.Secret)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("username", claims.Username)

		c.Next()
	}
}
