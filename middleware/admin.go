package middleware

import (
	"net/http"

	"github.com/rightguydaniel/deluxconex-BE/models"

	"github.com/gin-gonic/gin"
)

// AdminOnlyMiddleware requires an authenticated admin account. It must run
// after JWTAuthMiddleware.
func AdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		roleStr, ok := role.(string)
		if !ok || roleStr != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized admin access"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
