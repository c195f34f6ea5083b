package scheduling

import "time"

// TimeWindow is a half-open interval [Start, End) of absolute instants.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow builds a window, rejecting end <= start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, ErrInvalidWindow
	}
	return TimeWindow{Start: start, End: end}, nil
}

// WindowFor builds a window from a start instant and a positive duration.
func WindowFor(start time.Time, durationMinutes int) (TimeWindow, error) {
	return NewTimeWindow(start, start.Add(time.Duration(durationMinutes)*time.Minute))
}

// Overlaps reports whether the two windows share any instant.
// Touching endpoints do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Contains reports whether other lies entirely within w.
func (w TimeWindow) Contains(other TimeWindow) bool {
	return !other.Start.Before(w.Start) && !other.End.After(w.End)
}

// DurationMinutes returns the window length in whole minutes.
func (w TimeWindow) DurationMinutes() int {
	return int(w.End.Sub(w.Start) / time.Minute)
}

// Date returns the window's calendar date in "YYYY-MM-DD" form.
func (w TimeWindow) Date() string {
	return w.Start.Format("2006-01-02")
}

// HoursUntil returns the signed difference between t and now in hours.
// Negative means t is already in the past. Slot-skip logic and the fee
// tiers both use this so they agree on "how soon".
func HoursUntil(t, now time.Time) float64 {
	return t.Sub(now).Hours()
}

// minutesFromMidnight converts an instant to the storage convention of
// minutes since the local midnight of its date.
func minutesFromMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// windowBounds flattens a same-day window into the (date, start, end)
// tuple the repositories query on.
func windowBounds(w TimeWindow) (date string, start, end int) {
	start = minutesFromMidnight(w.Start)
	return w.Date(), start, start + w.DurationMinutes()
}
