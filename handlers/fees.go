package handlers

import (
	"errors"
	"net/http"

	bookingRepo "bookwell/database/repository/booking"
	"bookwell/utils"

	"github.com/gin-gonic/gin"
)

// GetCancellationFee quotes the cancellation fee for a booking right now.
// GET /api/scheduling/bookings/:bookingID/cancellation-fee?initiator=client|provider
func (h *SchedulingHandler) GetCancellationFee(c *gin.Context) {
	initiator := c.DefaultQuery("initiator", "client")
	if initiator != "client" && initiator != "provider" {
		utils.JSONError(c, http.StatusBadRequest, "invalid initiator", "expected 'client' or 'provider'")
		return
	}

	quote, err := h.Engine.CancellationFee(c.Request.Context(), c.Param("bookingID"), initiator == "client")
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute cancellation fee", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}
