package scheduling

import (
	"context"
	"errors"
	"fmt"

	reservationRepo "bookwell/database/repository/reservation"
	"bookwell/models"
	"bookwell/services/tasks"
	"bookwell/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReserveSlot places a 15-minute hold on the window for the customer.
// The availability re-check and the insert run as one transaction in the
// store; that transaction is the only guard against two customers
// claiming overlapping windows at the same moment.
func (se *DefaultSchedulingEngine) ReserveSlot(ctx context.Context, providerID string, window TimeWindow, customerID string) (*models.SlotReservation, error) {
	logger := utils.GetLogger()

	if !window.End.After(window.Start) {
		return nil, ErrInvalidWindow
	}

	now := se.now()
	date, start, end := windowBounds(window)
	reservation := &models.SlotReservation{
		ID:              uuid.New().String(),
		ProviderID:      providerID,
		CustomerID:      customerID,
		Date:            date,
		Start:           start,
		End:             end,
		DurationMinutes: window.DurationMinutes(),
		ReservedUntil:   now.Add(se.hold()),
		Status:          models.ReservationStatusReserved,
		CreatedAt:       now,
	}

	if err := se.Reservations.InsertIfAvailable(ctx, reservation, now); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			logger.Warn("slot not available for reservation",
				zap.String("providerID", providerID),
				zap.String("date", date),
				zap.Int("start", start))
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to reserve slot: %w", err)
	}

	se.invalidateSlotCache(ctx, providerID, date)
	se.enqueueExpirySweep(reservation)

	logger.Info("slot reserved",
		zap.String("reservationID", reservation.ID),
		zap.String("providerID", providerID),
		zap.String("customerID", customerID),
		zap.String("date", date))

	return reservation, nil
}

// ReleaseSlot marks a hold released. Releasing an unknown or already
// released/expired hold returns false and touches nothing.
func (se *DefaultSchedulingEngine) ReleaseSlot(ctx context.Context, reservationID string) (bool, error) {
	reservation, err := se.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load reservation: %w", err)
	}

	if err := se.Reservations.UpdateStatus(ctx, reservationID, models.ReservationStatusReleased); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			// Already terminal; nothing changed, so the cache stays put.
			return false, nil
		}
		return false, fmt.Errorf("failed to release reservation: %w", err)
	}

	se.invalidateSlotCache(ctx, reservation.ProviderID, reservation.Date)
	utils.GetLogger().Info("slot released", zap.String("reservationID", reservationID))
	return true, nil
}

// ExpireReservation flips one overdue hold to expired. It is the handler
// side of the sweep task enqueued at reservation time; a hold that was
// already released is left alone.
func (se *DefaultSchedulingEngine) ExpireReservation(ctx context.Context, reservationID string) error {
	reservation, err := se.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load reservation for expiry: %w", err)
	}

	now := se.now()
	if reservation.Status != models.ReservationStatusReserved || now.Before(reservation.ReservedUntil) {
		return nil
	}

	if err := se.Reservations.UpdateStatus(ctx, reservationID, models.ReservationStatusExpired); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil
		}
		return fmt.Errorf("failed to expire reservation: %w", err)
	}

	se.invalidateSlotCache(ctx, reservation.ProviderID, reservation.Date)
	utils.GetLogger().Info("reservation expired", zap.String("reservationID", reservationID))
	return nil
}

// ExpireDueReservations reclaims every overdue hold in one pass, used as a
// catch-up on worker start when scheduled tasks may have been lost.
func (se *DefaultSchedulingEngine) ExpireDueReservations(ctx context.Context) (int, error) {
	due, err := se.Reservations.ExpireDue(ctx, se.now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire due reservations: %w", err)
	}
	for _, reservation := range due {
		se.invalidateSlotCache(ctx, reservation.ProviderID, reservation.Date)
	}
	return len(due), nil
}

// invalidateSlotCache is best-effort; the TTL bounds staleness if it fails.
func (se *DefaultSchedulingEngine) invalidateSlotCache(ctx context.Context, providerID, date string) {
	if se.Cache == nil {
		return
	}
	if err := se.Cache.Invalidate(ctx, providerID, date); err != nil {
		utils.GetLogger().Warn("slot cache invalidation failed",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(err))
	}
}

func (se *DefaultSchedulingEngine) enqueueExpirySweep(reservation *models.SlotReservation) {
	if se.SweepClient == nil {
		return
	}
	task, opts, err := tasks.NewReservationSweepTask(reservation.ID, reservation.ReservedUntil)
	if err != nil {
		utils.GetLogger().Warn("failed to build sweep task", zap.Error(err))
		return
	}
	if _, err := se.SweepClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue sweep task",
			zap.String("reservationID", reservation.ID), zap.Error(err))
	}
}
