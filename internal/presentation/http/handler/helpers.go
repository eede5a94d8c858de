package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/omsai/pos-backend/pkg/apperror"
)

// legacyError writes an error in the flat {"error": ...} shape the counter
// frontend expects on the legacy routes. The status code comes from the
// error's taxonomy: 400 validation, 404 not found, 500 otherwise.
func legacyError(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
