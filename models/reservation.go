package models

import "time"

// Reservation statuses. "released" and "expired" are terminal.
const (
	ReservationStatusReserved = "reserved"
	ReservationStatusReleased = "released"
	ReservationStatusExpired  = "expired"
)

// SlotReservation is a short-lived hold on a slot placed before a booking
// is confirmed. Only an unexpired "reserved" hold blocks other customers.
type SlotReservation struct {
	ID              string    `bson:"id" json:"id"`
	ProviderID      string    `bson:"provider_id" json:"provider_id"`
	CustomerID      string    `bson:"customer_id" json:"customer_id"`
	Date            string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start           int       `bson:"start" json:"start"`
	End             int       `bson:"end" json:"end"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	ReservedUntil   time.Time `bson:"reserved_until" json:"reserved_until"`
	Status          string    `bson:"status" json:"status"` // reserved | released | expired
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// Live reports whether the hold still blocks the slot at the given instant.
func (r SlotReservation) Live(now time.Time) bool {
	return r.Status == ReservationStatusReserved && now.Before(r.ReservedUntil)
}
