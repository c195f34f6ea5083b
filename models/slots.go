package models

// Slot is a candidate start time for a service on a given date.
// Slots are computed values, never persisted; unavailable slots are
// still listed so a client can render "fully booked" context.
type Slot struct {
	Date            string `json:"date"` // "YYYY-MM-DD"
	Time            string `json:"time"` // "HH:MM"
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// NearestSlot is the result of a forward scan for the first free window.
type NearestSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// OccupancyStats aggregates tick counts for a provider over a date range.
// Rates are percentages rounded to 2 decimals, 0 when no slots exist.
type OccupancyStats struct {
	TotalSlots       int     `json:"totalSlots"`
	AvailableSlots   int     `json:"availableSlots"`
	BusySlots        int     `json:"busySlots"`
	OccupancyRate    float64 `json:"occupancyRate"`
	AvailabilityRate float64 `json:"availabilityRate"`
}
