package handlers

import (
	"errors"
	"net/http"
	"time"

	"bookwell/services/scheduling"
	"bookwell/utils"

	"github.com/gin-gonic/gin"
)

// ReserveSlot places a short-lived hold on a window.
// POST /api/scheduling/reservations
func (h *SchedulingHandler) ReserveSlot(c *gin.Context) {
	var input struct {
		ProviderID string `json:"providerId" binding:"required"`
		CustomerID string `json:"customerId" binding:"required"`
		Start      string `json:"start" binding:"required"` // RFC3339
		End        string `json:"end" binding:"required"`   // RFC3339
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	start, err := time.ParseInLocation(time.RFC3339, input.Start, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start", "expected RFC3339 timestamp")
		return
	}
	end, err := time.ParseInLocation(time.RFC3339, input.End, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end", "expected RFC3339 timestamp")
		return
	}

	window, err := scheduling.NewTimeWindow(start, end)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid window", err.Error())
		return
	}

	reservation, err := h.Engine.ReserveSlot(c.Request.Context(), input.ProviderID, window, input.CustomerID)
	if err != nil {
		if errors.Is(err, scheduling.ErrSlotUnavailable) {
			c.JSON(http.StatusConflict, gin.H{"error": "slot is no longer available"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to reserve slot", err.Error())
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// ReleaseSlot frees a held window.
// POST /api/scheduling/reservations/:reservationID/release
func (h *SchedulingHandler) ReleaseSlot(c *gin.Context) {
	released, err := h.Engine.ReleaseSlot(c.Request.Context(), c.Param("reservationID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to release slot", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"released": released})
}
