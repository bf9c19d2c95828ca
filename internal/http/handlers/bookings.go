package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/services"
)

// BookingHandler handles the booking endpoints.
type BookingHandler struct {
	Service services.BookingService
	Receipt services.ReceiptService
}

func NewBookingHandler(service services.BookingService, receipt services.ReceiptService) *BookingHandler {
	return &BookingHandler{Service: service, Receipt: receipt}
}

type bookingPayload struct {
	UserID          int64    `json:"user_id" binding:"required"`
	VanID           int64    `json:"van_id" binding:"required"`
	Status          string   `json:"status"`
	PickupLocation  string   `json:"pickup_location" binding:"required"`
	DropoffLocation string   `json:"dropoff_location" binding:"required"`
	ScheduledTime   string   `json:"scheduled_time" binding:"required"`
	VanSize         string   `json:"van_size" binding:"required"`
	TimeSlot        string   `json:"time_slot" binding:"required"`
	Distance        *string  `json:"distance"`
	DurationMinutes *int     `json:"duration_minutes"`
	Toll            *float64 `json:"toll"`
}

// POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	input := services.CreateBookingInput{
		UserID:          payload.UserID,
		VanID:           payload.VanID,
		Status:          payload.Status,
		PickupLocation:  payload.PickupLocation,
		DropoffLocation: payload.DropoffLocation,
		ScheduledTime:   payload.ScheduledTime,
		VanSize:         payload.VanSize,
		TimeSlot:        payload.TimeSlot,
	}
	if payload.Distance != nil {
		input.Distance = *payload.Distance
	}
	if payload.DurationMinutes != nil {
		input.DurationMinutes = *payload.DurationMinutes
	}
	if payload.Toll != nil {
		input.Toll = *payload.Toll
	}

	created, err := h.Service.Create(input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	list, err := h.Service.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PATCH /bookings/:id/status?status=<value>
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "invalid booking id")
		return
	}

	updated, err := h.Service.UpdateStatus(id, c.Query("status"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GET /bookings/:id/receipt
func (h *BookingHandler) GetReceipt(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "invalid booking id")
		return
	}

	pdf, filename, err := h.Receipt.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
