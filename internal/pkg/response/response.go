package response

import "github.com/gin-gonic/gin"

// Stable machine-readable error kinds. The human message stays the client's
// display contract; the kind is what programs should branch on.
const (
	KindValidation   = "VALIDATION_ERROR"
	KindNotFound     = "NOT_FOUND"
	KindConflict     = "CONFLICT"
	KindUnauthorized = "UNAUTHORIZED"
	KindServer       = "SERVER_ERROR"
)

func OK(c *gin.Context, payload gin.H) {
	c.JSON(200, payload)
}

func Error(c *gin.Context, statusCode int, kind string, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
		"kind":  kind,
	})
}
