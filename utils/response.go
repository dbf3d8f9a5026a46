package utils

import "github.com/gin-gonic/gin"

// Response is the uniform JSON envelope used by every endpoint.
type Response struct {
	Status       string      `json:"status"`
	Message      string      `json:"message"`
	Error        bool        `json:"error"`
	Data         interface{} `json:"data"`
	ErrorMessage string      `json:"errorMessage,omitempty"`
}

// Respond writes the envelope. Status codes below 400 report "success";
// everything else reports "error" with the optional operator-facing detail.
func Respond(c *gin.Context, code int, message string, data interface{}, errorMessage string) {
	status := "success"
	isErr := false
	if code >= 400 {
		status = "error"
		isErr = true
	}
	c.JSON(code, Response{
		Status:       status,
		Message:      message,
		Error:        isErr,
		Data:         data,
		ErrorMessage: errorMessage,
	})
}

// RespondOK is the common success shape.
func RespondOK(c *gin.Context, message string, data interface{}) {
	Respond(c, 200, message, data, "")
}
