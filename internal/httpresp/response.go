package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every success response carries the {success, data, ...} envelope the
// frontend expects.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func OKMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func OKWithMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

func List(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count})
}

// FilteredList is List plus the echo of the applied filter (nil when the
// result is unfiltered).
func FilteredList(c *gin.Context, data any, count int, filter any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "count": count, "filter": filter})
}

func Created(c *gin.Context, location, message string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}
