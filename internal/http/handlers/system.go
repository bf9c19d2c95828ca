package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	DB *sql.DB
}

func NewSystemHandler(db *sql.DB) *SystemHandler {
	return &SystemHandler{DB: db}
}

// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "CargoVan Connect API"})
}

// GET /db-check
func (h *SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected")
		return
	}
	var count int
	if err := h.DB.QueryRow("SELECT COUNT(*) FROM bookings").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database query failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "bookings_in_db": count})
}
