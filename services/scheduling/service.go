package scheduling

import (
	"time"

	bookingRepo "bookwell/database/repository/booking"
	providerRepo "bookwell/database/repository/provider"
	reservationRepo "bookwell/database/repository/reservation"
	serviceRepo "bookwell/database/repository/service"

	"github.com/hibiken/asynq"
)

// Engine tunables, overridable per instance.
const (
	defaultTickMinutes     = 30
	defaultHoldMinutes     = 15
	defaultDurationMinutes = 60
	defaultDayEndHour      = 20
	defaultDayStartHour    = 9
	defaultNearestSlotLead = 30 * time.Minute
)

// DefaultSchedulingEngine is our production implementation of SchedulingService.
type DefaultSchedulingEngine struct {
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
	Reservations reservationRepo.ReservationStore
	ServiceRepo  serviceRepo.ServiceRepository
	Cache        SlotCache

	// SweepClient enqueues reservation-expiry tasks; optional.
	SweepClient *asynq.Client

	// TickMinutes is the slot generation granularity (default 30).
	TickMinutes int
	// HoldMinutes is the reservation TTL (default 15).
	HoldMinutes int
	// DurationMinutes is the fallback service duration (default 60).
	DurationMinutes int
	// DayEndHour / DayStartHour bound the nearest-slot day rollover.
	DayEndHour   int
	DayStartHour int

	// Clock supplies "now"; tests override it for determinism.
	Clock func() time.Time
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Clock != nil {
		return se.Clock()
	}
	return time.Now()
}

func (se *DefaultSchedulingEngine) tick() time.Duration {
	if se.TickMinutes > 0 {
		return time.Duration(se.TickMinutes) * time.Minute
	}
	return defaultTickMinutes * time.Minute
}

func (se *DefaultSchedulingEngine) tickMinutes() int {
	if se.TickMinutes > 0 {
		return se.TickMinutes
	}
	return defaultTickMinutes
}

func (se *DefaultSchedulingEngine) hold() time.Duration {
	if se.HoldMinutes > 0 {
		return time.Duration(se.HoldMinutes) * time.Minute
	}
	return defaultHoldMinutes * time.Minute
}

func (se *DefaultSchedulingEngine) fallbackDuration() int {
	if se.DurationMinutes > 0 {
		return se.DurationMinutes
	}
	return defaultDurationMinutes
}

func (se *DefaultSchedulingEngine) dayEndHour() int {
	if se.DayEndHour > 0 {
		return se.DayEndHour
	}
	return defaultDayEndHour
}

func (se *DefaultSchedulingEngine) dayStartHour() int {
	if se.DayStartHour > 0 {
		return se.DayStartHour
	}
	return defaultDayStartHour
}
