package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and returns the standard
// envelope instead of a blank 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))
				Respond(c, http.StatusInternalServerError, "Internal Server Error", nil,
					"An unexpected error occurred. Please try again later.")
				c.Abort()
			}
		}()
		c.Next()
	}
}
