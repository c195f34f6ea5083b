package scheduling

import "errors"

var (
	// ErrNotWorkingDay means the provider has no schedule entry for the day
	// or is off. Read paths treat it as zero availability, not a failure.
	ErrNotWorkingDay = errors.New("provider is not working on this day")

	// ErrSlotUnavailable means the requested window was no longer free at
	// commit time; the caller should re-query availability and retry.
	ErrSlotUnavailable = errors.New("slot is no longer available")

	// ErrInvalidWindow rejects windows with end <= start before any lookup.
	ErrInvalidWindow = errors.New("time window end must be after start")
)
