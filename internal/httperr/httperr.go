package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

// Internal reports a 500 with the underlying error text under "error",
// mirroring the envelope the success paths use.
func Internal(c *gin.Context, message string, err error) {
	payload := gin.H{"success": false, "message": message}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, payload)
}

// Validation returns the field-level error list collected by the
// validation rule chain.
func Validation(c *gin.Context, errs any) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}
