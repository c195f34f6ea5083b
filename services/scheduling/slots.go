package scheduling

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	serviceRepo "bookwell/database/repository/service"
	"bookwell/models"
	"bookwell/utils"

	"go.uber.org/zap"
)

// AvailableSlots computes per-date slot lists for a provider over
// [fromDate, fromDate+daysAhead]. Non-working days contribute no entry.
func (se *DefaultSchedulingEngine) AvailableSlots(ctx context.Context, providerID, serviceID string, fromDate time.Time, daysAhead int) (map[string][]models.Slot, error) {
	duration, err := se.serviceDuration(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	now := se.now()
	result := make(map[string][]models.Slot)
	for offset := 0; offset <= daysAhead; offset++ {
		date := fromDate.AddDate(0, 0, offset)
		slots, err := se.generateDaySlots(ctx, providerID, date, duration, now)
		if err != nil {
			return nil, err
		}
		if len(slots) > 0 {
			result[date.Format("2006-01-02")] = slots
		}
	}
	return result, nil
}

// serviceDuration resolves the requested service's duration; an unknown or
// empty service id falls back to the engine default.
func (se *DefaultSchedulingEngine) serviceDuration(ctx context.Context, serviceID string) (int, error) {
	if serviceID == "" {
		return se.fallbackDuration(), nil
	}
	service, err := se.ServiceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return se.fallbackDuration(), nil
		}
		return 0, fmt.Errorf("failed to resolve service duration: %w", err)
	}
	if service.DurationMinutes <= 0 {
		return se.fallbackDuration(), nil
	}
	return service.DurationMinutes, nil
}

// generateDaySlots walks a working day in fixed ticks and classifies each
// candidate window. Past ticks and break-intersecting ticks are skipped;
// conflicting ticks are emitted marked unavailable so clients can render
// "fully booked" context.
func (se *DefaultSchedulingEngine) generateDaySlots(ctx context.Context, providerID string, date time.Time, durationMinutes int, now time.Time) ([]models.Slot, error) {
	logger := utils.GetLogger()
	dateStr := date.Format("2006-01-02")

	if se.Cache != nil {
		cached, found, err := se.Cache.GetDaySlots(ctx, providerID, dateStr, durationMinutes)
		if err != nil {
			logger.Warn("slot cache read failed, regenerating",
				zap.String("providerID", providerID), zap.String("date", dateStr), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	work, breaks, err := se.workingIntervalFor(ctx, providerID, date)
	if err != nil {
		if errors.Is(err, ErrNotWorkingDay) {
			se.cacheDaySlots(ctx, providerID, dateStr, durationMinutes, nil)
			return nil, nil
		}
		return nil, err
	}

	serviceSpan := time.Duration(durationMinutes) * time.Minute
	var slots []models.Slot

walk:
	for tickStart := work.Start; !tickStart.Add(serviceSpan).After(work.End); tickStart = tickStart.Add(se.tick()) {
		if HoursUntil(tickStart, now) < 0 {
			continue
		}
		window := TimeWindow{Start: tickStart, End: tickStart.Add(serviceSpan)}
		for _, brk := range breaks {
			if window.Overlaps(brk) {
				continue walk
			}
		}

		conflict, err := se.HasConflict(ctx, providerID, window, "", now)
		if err != nil {
			return nil, err
		}
		slots = append(slots, models.Slot{
			Date:            dateStr,
			Time:            tickStart.Format("15:04"),
			DurationMinutes: durationMinutes,
			Available:       !conflict,
		})
	}

	se.cacheDaySlots(ctx, providerID, dateStr, durationMinutes, slots)
	return slots, nil
}

// cacheDaySlots is best-effort; a cache failure never fails the read path.
func (se *DefaultSchedulingEngine) cacheDaySlots(ctx context.Context, providerID, date string, durationMinutes int, slots []models.Slot) {
	if se.Cache == nil {
		return
	}
	if err := se.Cache.SetDaySlots(ctx, providerID, date, durationMinutes, slots); err != nil {
		utils.GetLogger().Warn("slot cache write failed",
			zap.String("providerID", providerID), zap.String("date", date), zap.Error(err))
	}
}

// FindNearestAvailableSlot scans forward from preferredTime in
// duration-aligned steps for the first window the provider can take.
// Once the scan passes the evening cutoff it jumps to the next day's
// opening hour instead of walking through the night.
func (se *DefaultSchedulingEngine) FindNearestAvailableSlot(ctx context.Context, providerID string, preferredTime time.Time, durationMinutes, searchDays int) (*models.NearestSlot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidWindow
	}
	now := se.now()
	searchEnd := preferredTime.AddDate(0, 0, searchDays)
	current := preferredTime

	for !current.After(searchEnd) {
		if current.Before(now) {
			current = now.Add(defaultNearestSlotLead)
		}

		window := TimeWindow{Start: current, End: current.Add(time.Duration(durationMinutes) * time.Minute)}
		available, err := se.isProviderAvailable(ctx, providerID, window, now)
		if err != nil {
			return nil, err
		}
		if available {
			return &models.NearestSlot{
				Date: current.Format("2006-01-02"),
				Time: current.Format("15:04"),
			}, nil
		}

		current = current.Add(time.Duration(durationMinutes) * time.Minute)
		if current.Hour() >= se.dayEndHour() {
			next := current.AddDate(0, 0, 1)
			current = time.Date(next.Year(), next.Month(), next.Day(), se.dayStartHour(), 0, 0, 0, next.Location())
		}
	}

	return nil, nil
}

// OccupancyStats aggregates day-by-day tick counts for a provider.
// Busy counts follow the booking rows for each date; rates are percentages
// rounded to two decimals, zero when the range has no working ticks.
func (se *DefaultSchedulingEngine) OccupancyStats(ctx context.Context, providerID string, fromDate, toDate time.Time) (models.OccupancyStats, error) {
	var stats models.OccupancyStats

	for date := fromDate; !date.After(toDate); date = date.AddDate(0, 0, 1) {
		work, _, err := se.workingIntervalFor(ctx, providerID, date)
		if err != nil {
			if errors.Is(err, ErrNotWorkingDay) {
				continue
			}
			return models.OccupancyStats{}, err
		}

		total := work.DurationMinutes() / se.tickMinutes()
		bookings, err := se.BookingRepo.GetForProviderDate(ctx, providerID, date.Format("2006-01-02"))
		if err != nil {
			return models.OccupancyStats{}, fmt.Errorf("failed to fetch bookings for stats: %w", err)
		}

		stats.TotalSlots += total
		stats.BusySlots += len(bookings)
		stats.AvailableSlots += total - len(bookings)
	}

	if stats.TotalSlots > 0 {
		stats.OccupancyRate = round2(float64(stats.BusySlots) / float64(stats.TotalSlots) * 100)
		stats.AvailabilityRate = round2(float64(stats.AvailableSlots) / float64(stats.TotalSlots) * 100)
	}
	return stats, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
