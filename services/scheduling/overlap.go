package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HasConflict reports whether any active booking or live hold for the
// provider overlaps the window. excludeBookingID skips one booking, used
// when validating a reschedule of that same booking.
func (se *DefaultSchedulingEngine) HasConflict(ctx context.Context, providerID string, window TimeWindow, excludeBookingID string, now time.Time) (bool, error) {
	date, start, end := windowBounds(window)

	bookings, err := se.BookingRepo.FindActiveOverlapping(ctx, providerID, date, start, end, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("failed to check booking conflicts: %w", err)
	}
	if len(bookings) > 0 {
		return true, nil
	}

	holds, err := se.Reservations.FindLiveOverlapping(ctx, providerID, date, start, end, "", now)
	if err != nil {
		return false, fmt.Errorf("failed to check reservation conflicts: %w", err)
	}
	return len(holds) > 0, nil
}

// CustomerHasConflict reports whether the customer's own active bookings
// across all providers overlap the window, preventing self double-booking.
func (se *DefaultSchedulingEngine) CustomerHasConflict(ctx context.Context, customerID string, window TimeWindow, excludeBookingID string) (bool, error) {
	date, start, end := windowBounds(window)

	bookings, err := se.BookingRepo.FindActiveOverlappingForCustomer(ctx, customerID, date, start, end, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("failed to check customer conflicts: %w", err)
	}
	return len(bookings) > 0, nil
}

// isProviderAvailable checks the full booking precondition for a window:
// inside working hours, clear of breaks, and conflict-free.
func (se *DefaultSchedulingEngine) isProviderAvailable(ctx context.Context, providerID string, window TimeWindow, now time.Time) (bool, error) {
	work, breaks, err := se.workingIntervalFor(ctx, providerID, window.Start)
	if err != nil {
		if errors.Is(err, ErrNotWorkingDay) {
			return false, nil
		}
		return false, err
	}
	if !work.Contains(window) {
		return false, nil
	}
	for _, brk := range breaks {
		if window.Overlaps(brk) {
			return false, nil
		}
	}

	conflict, err := se.HasConflict(ctx, providerID, window, "", now)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}
