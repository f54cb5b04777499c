package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/finrecords/financial-records-api/internal/db"
)

const apiVersion = "1.0.0"

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// GET /api/health
func (h *HealthHandler) Check(c *gin.Context) {
	if err := dbpkg.Ping(h.db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   apiVersion,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Financial Records API",
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   apiVersion,
	})
}
