package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape for every endpoint. The HTTP
// status code carries the primary signal; the body mirrors it.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// OK sends a 200 response with data and a message.
func OK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Created sends a 201 response with data and a message.
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data, Message: message})
}

// Fail sends an error response with the given status and error message.
func Fail(c *gin.Context, statusCode int, errMsg string) {
	c.JSON(statusCode, Envelope{Success: false, Error: errMsg})
}

// FailWithDetails sends an error response carrying field-level details,
// used for validation failures.
func FailWithDetails(c *gin.Context, statusCode int, errMsg string, details interface{}) {
	c.JSON(statusCode, Envelope{Success: false, Error: errMsg, Details: details})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, errMsg string) {
	c.AbortWithStatusJSON(statusCode, Envelope{Success: false, Error: errMsg})
}
