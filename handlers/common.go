package handlers

import "github.com/gin-gonic/gin"

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) string {
	v, ok := c.Get("userID")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
