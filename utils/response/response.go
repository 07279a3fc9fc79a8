package response

import (
	"errors"
	"log"
	"net/http"

	"retail-api/utils/apperror"

	"github.com/gin-gonic/gin"
)

// Error writes {"error": msg} with the status mapped from err. Server errors
// are logged with their cause and answered with a generic message.
func Error(c *gin.Context, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.Internal(err)
	}

	if appErr.Kind == apperror.KindServer {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), appErr.Err)
	}

	c.AbortWithStatusJSON(appErr.Status(), gin.H{"error": appErr.Message})
}

func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
