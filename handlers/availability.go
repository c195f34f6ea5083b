package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bookwell/services/scheduling"
	"bookwell/utils"

	"github.com/gin-gonic/gin"
)

// SchedulingHandler exposes the scheduling engine over HTTP.
type SchedulingHandler struct {
	Engine scheduling.SchedulingService
}

// NewSchedulingHandler constructs the handler set for the scheduling routes.
func NewSchedulingHandler(engine scheduling.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Engine: engine}
}

// GetAvailableSlots lists per-date slots for a provider.
// GET /api/scheduling/providers/:providerID/slots?serviceID=&fromDate=&daysAhead=
func (h *SchedulingHandler) GetAvailableSlots(c *gin.Context) {
	providerID := c.Param("providerID")
	serviceID := c.Query("serviceID")

	fromDate := time.Now()
	if raw := c.Query("fromDate"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid fromDate", "expected YYYY-MM-DD")
			return
		}
		fromDate = parsed
	}

	daysAhead := 7
	if raw := c.Query("daysAhead"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid daysAhead", "expected a non-negative integer")
			return
		}
		daysAhead = parsed
	}

	slots, err := h.Engine.AvailableSlots(c.Request.Context(), providerID, serviceID, fromDate, daysAhead)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetNearestSlot returns the first free window at or after the preferred time.
// GET /api/scheduling/providers/:providerID/nearest-slot?preferredTime=&durationMinutes=&searchDays=
func (h *SchedulingHandler) GetNearestSlot(c *gin.Context) {
	providerID := c.Param("providerID")

	preferred := time.Now()
	if raw := c.Query("preferredTime"); raw != "" {
		parsed, err := time.ParseInLocation(time.RFC3339, raw, time.Local)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid preferredTime", "expected RFC3339 timestamp")
			return
		}
		preferred = parsed
	}

	duration := 60
	if raw := c.Query("durationMinutes"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid durationMinutes", "expected a positive integer")
			return
		}
		duration = parsed
	}

	searchDays := 7
	if raw := c.Query("searchDays"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid searchDays", "expected a positive integer")
			return
		}
		searchDays = parsed
	}

	slot, err := h.Engine.FindNearestAvailableSlot(c.Request.Context(), providerID, preferred, duration, searchDays)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search for a slot", err.Error())
		return
	}
	if slot == nil {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "slot": slot})
}

// GetOccupancyStats aggregates slot usage over a date range.
// GET /api/scheduling/providers/:providerID/occupancy?fromDate=&toDate=
func (h *SchedulingHandler) GetOccupancyStats(c *gin.Context) {
	providerID := c.Param("providerID")

	fromDate, err := time.ParseInLocation("2006-01-02", c.Query("fromDate"), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid fromDate", "expected YYYY-MM-DD")
		return
	}
	toDate, err := time.ParseInLocation("2006-01-02", c.Query("toDate"), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid toDate", "expected YYYY-MM-DD")
		return
	}
	if toDate.Before(fromDate) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "toDate must not be before fromDate")
		return
	}

	stats, err := h.Engine.OccupancyStats(c.Request.Context(), providerID, fromDate, toDate)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute occupancy stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
