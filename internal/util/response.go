package util

import "github.com/gin-gonic/gin"

// Error writes the uniform error body used by the whole API.
func Error(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, gin.H{"message": msg})
}
