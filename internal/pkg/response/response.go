package response

import (
	"log"

	"github.com/gin-gonic/gin"

	"roombook/internal/pkg/apperr"
)

// Success writes the entity payload. Handlers that only have a status
// message to report pass it through Message instead.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Error emits the shared {message, statusCode} error body.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message":    message,
		"statusCode": statusCode,
	})
}

// FromError maps a classified error to its HTTP form. Unclassified faults
// are logged with full detail and surface as a generic 500.
func FromError(c *gin.Context, err error) {
	status := apperr.Status(err)
	if apperr.KindOf(err) == apperr.Internal {
		log.Printf("internal_error method=%s path=%s error=%q",
			c.Request.Method, c.Request.URL.Path, err.Error())
	}
	Error(c, status, apperr.Message(err))
}
