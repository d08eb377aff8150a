package handlers

import (
	"errors"
	"net/http"

	"detailify/models"
	"detailify/services/schedule"
	"detailify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler exposes the booking calendar endpoints.
type ScheduleHandler struct {
	Service schedule.SchedulingService
}

func NewScheduleHandler(svc schedule.SchedulingService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// respondScheduleError maps service errors onto HTTP statuses. Malformed
// civil input and business-rule rejections are client errors; anything
// else is a 500.
func respondScheduleError(c *gin.Context, err error) {
	var malformed *schedule.MalformedCivilTimeError
	switch {
	case errors.Is(err, schedule.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &malformed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date/time", "details": err.Error()})
	default:
		var schedErr *schedule.SchedulingError
		if errors.As(err, &schedErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": schedErr.Message})
			return
		}
		utils.GetLogger().Error("Schedule operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// PreviewHandler resolves a date/time pair to its UTC instant and display
// form without creating anything.
func (h *ScheduleHandler) PreviewHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	preview, err := h.Service.Preview(req.Date, req.Time)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// CreateBookingHandler books a detailing appointment.
func (h *ScheduleHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	booking, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookingsHandler returns bookings, upcoming only unless includePast=true.
func (h *ScheduleHandler) ListBookingsHandler(c *gin.Context) {
	status := c.Query("status")
	includePast := c.Query("includePast") == "true"

	bookings, err := h.Service.ListBookings(c.Request.Context(), status, includePast)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// GetBookingHandler returns a single booking by ID.
func (h *ScheduleHandler) GetBookingHandler(c *gin.Context) {
	booking, err := h.Service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler cancels a booking, releasing its reminder and deposit.
func (h *ScheduleHandler) CancelBookingHandler(c *gin.Context) {
	booking, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CompleteBookingHandler marks a confirmed booking as done.
func (h *ScheduleHandler) CompleteBookingHandler(c *gin.Context) {
	booking, err := h.Service.CompleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
