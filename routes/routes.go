package routes

import (
	"net/http"

	"bookwell/handlers"
	"bookwell/utils"

	"github.com/gin-gonic/gin"
)

// RegisterSchedulingRoutes registers all endpoints for the scheduling engine.
func RegisterSchedulingRoutes(r *gin.Engine, h *handlers.SchedulingHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	scheduling := r.Group("/api/scheduling")
	{
		scheduling.GET("/providers/:providerID/slots", h.GetAvailableSlots)
		scheduling.GET("/providers/:providerID/nearest-slot", h.GetNearestSlot)
		scheduling.GET("/providers/:providerID/occupancy", h.GetOccupancyStats)
		scheduling.POST("/reservations", h.ReserveSlot)
		scheduling.POST("/reservations/:reservationID/release", h.ReleaseSlot)
		scheduling.GET("/bookings/:bookingID/cancellation-fee", h.GetCancellationFee)
	}
}
