package scheduling

import (
	"context"
	"errors"
	"time"

	providerRepo "bookwell/database/repository/provider"
)

// workingIntervalFor resolves the provider's weekly schedule against a
// calendar date into an absolute working window plus break windows.
// A missing provider, missing schedule entry, or off day all come back as
// ErrNotWorkingDay; callers translate that to zero slots.
func (se *DefaultSchedulingEngine) workingIntervalFor(ctx context.Context, providerID string, date time.Time) (TimeWindow, []TimeWindow, error) {
	schedule, err := se.ProviderRepo.GetSchedule(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return TimeWindow{}, nil, ErrNotWorkingDay
		}
		return TimeWindow{}, nil, err
	}

	day := schedule.For(date.Weekday())
	if day == nil || !day.IsWorkingDay {
		return TimeWindow{}, nil, ErrNotWorkingDay
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	work, err := NewTimeWindow(
		midnight.Add(time.Duration(day.WorkStart)*time.Minute),
		midnight.Add(time.Duration(day.WorkEnd)*time.Minute),
	)
	if err != nil {
		return TimeWindow{}, nil, err
	}

	var breaks []TimeWindow
	if day.BreakStart != nil && day.BreakEnd != nil {
		brk, err := NewTimeWindow(
			midnight.Add(time.Duration(*day.BreakStart)*time.Minute),
			midnight.Add(time.Duration(*day.BreakEnd)*time.Minute),
		)
		if err != nil {
			return TimeWindow{}, nil, err
		}
		breaks = append(breaks, brk)
	}

	return work, breaks, nil
}
