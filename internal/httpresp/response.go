package httpresp

import "github.com/gin-gonic/gin"

// OK writes an arbitrary 200 payload.
func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Success writes the standard {success:true, message} body.
func Success(c *gin.Context, message string) {
	c.JSON(200, gin.H{"success": true, "message": message})
}
