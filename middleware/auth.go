package middleware

import (
	"net/http"

	"github.com/fura-1993/totono/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuth protège les routes du dashboard. La session est portée par un
// cookie httpOnly signé; tout cookie absent, invalide ou expiré vaut 401.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.AdminSessionCookie)
		if err != nil || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if err := utils.VerifyAdminToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
