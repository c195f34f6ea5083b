package models

import "time"

// Booking statuses. Cancelled bookings never block a slot.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                             // Unique booking identifier (UUID)
	ProviderID      string    `bson:"provider_id" json:"provider_id"`           // Provider who was booked
	CustomerID      string    `bson:"customer_id" json:"customer_id"`           // Customer who made the booking
	Date            string    `bson:"date" json:"date"`                         // Booking date in "YYYY-MM-DD" format
	Start           int       `bson:"start" json:"start"`                       // Booking start time (minutes from midnight)
	End             int       `bson:"end" json:"end"`                           // Booking end time (minutes from midnight)
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"` // Service duration
	Status          string    `bson:"status" json:"status"`                     // pending | confirmed | completed | cancelled
	TotalPrice      float64   `bson:"total_price" json:"total_price"`           // Calculated total price
	PaidAmount      float64   `bson:"paid_amount" json:"paid_amount"`           // Amount actually paid so far
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// StartTime anchors the booking's date and start minute in the given location.
func (b Booking) StartTime(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", b.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(b.Start) * time.Minute), nil
}
