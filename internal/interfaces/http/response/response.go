package response

import (
	"github.com/gin-gonic/gin"
	domainerrors "laundry-scout.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
