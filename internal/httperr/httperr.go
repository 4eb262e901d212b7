package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Failure is the error body every endpoint returns: callers check the
// success flag, the message is for display.
type Failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, Failure{Success: false, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

// Reject reports a business failure without an error status: the request
// was handled, the operation just didn't succeed (OTP mismatch, expiry).
func Reject(c *gin.Context, message string) {
	Write(c, http.StatusOK, message)
}
