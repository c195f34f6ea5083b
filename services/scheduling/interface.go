package scheduling

import (
	"context"
	"time"

	"bookwell/models"
)

// SchedulingService exposes the availability and reservation engine.
type SchedulingService interface {
	// AvailableSlots lists per-date slots for a provider over
	// [fromDate, fromDate+daysAhead]. Unavailable slots are included and
	// marked, never silently dropped.
	AvailableSlots(ctx context.Context, providerID, serviceID string, fromDate time.Time, daysAhead int) (map[string][]models.Slot, error)
	// FindNearestAvailableSlot scans forward from preferredTime for the
	// first free window; nil when nothing is free within searchDays.
	FindNearestAvailableSlot(ctx context.Context, providerID string, preferredTime time.Time, durationMinutes, searchDays int) (*models.NearestSlot, error)
	// OccupancyStats aggregates tick counts over [fromDate, toDate].
	OccupancyStats(ctx context.Context, providerID string, fromDate, toDate time.Time) (models.OccupancyStats, error)
	// ReserveSlot places a short-lived hold on the window for the customer.
	// Returns ErrSlotUnavailable when the window is taken at commit time.
	ReserveSlot(ctx context.Context, providerID string, window TimeWindow, customerID string) (*models.SlotReservation, error)
	// ReleaseSlot marks a hold released; false when the hold is unknown or
	// already terminal.
	ReleaseSlot(ctx context.Context, reservationID string) (bool, error)
	// CancellationFee quotes the time-tiered fee for cancelling a booking.
	CancellationFee(ctx context.Context, bookingID string, isClientInitiated bool) (models.FeeQuote, error)
}
