package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/repositories"
)

type VanHandler struct {
	Vans repositories.VanRepository
}

func NewVanHandler(vans repositories.VanRepository) *VanHandler {
	return &VanHandler{Vans: vans}
}

type vanPayload struct {
	Size    string `json:"size" binding:"required"`
	OwnerID int64  `json:"owner_id" binding:"required"`
}

// POST /vans
func (h *VanHandler) Create(c *gin.Context) {
	var payload vanPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	van, err := h.Vans.Create(strings.TrimSpace(payload.Size), payload.OwnerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, van)
}

// GET /vans
func (h *VanHandler) List(c *gin.Context) {
	vans, err := h.Vans.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, vans)
}

// GET /vans/:id
func (h *VanHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_van_id", "invalid van id")
		return
	}

	van, err := h.Vans.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, van)
}
