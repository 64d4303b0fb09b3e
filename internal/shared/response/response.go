package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is the body of every message-only response, errors included
type MessageBody struct {
	Message string `json:"message"`
}

// Success writes data as the JSON body
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes {"message": msg}
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, MessageBody{Message: msg})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Internal server error")
}
