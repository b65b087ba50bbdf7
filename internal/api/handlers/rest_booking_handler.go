package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rakb/api/internal/models"
	"rakb/api/internal/services"
)

// RestBookingHandler handles REST requests for bookings.
type RestBookingHandler struct {
	bookingService services.IBookingService
}

// NewRestBookingHandler creates a new RestBookingHandler.
func NewRestBookingHandler(bookingService services.IBookingService) *RestBookingHandler {
	return &RestBookingHandler{bookingService: bookingService}
}

// CreateBooking handles POST /api/bookings
func (h *RestBookingHandler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "Invalid request body"})
		return
	}
	booking.ApplyDefaults()
	if err := booking.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": models.FieldErrors(err)})
		return
	}

	id, err := h.bookingService.Create(c.Request.Context(), &booking)
	if err != nil {
		if errors.Is(err, services.ErrDatesUnavailable) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Dates not available"})
			return
		}
		writeStoreError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
