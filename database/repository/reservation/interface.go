// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"
	"time"

	"bookwell/database"
	"bookwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by InsertIfAvailable when the availability
// re-check inside the transaction finds a conflicting booking or hold.
var ErrSlotTaken = errors.New("slot already taken")

// ErrReservationNotFound is returned for status updates on unknown ids.
var ErrReservationNotFound = errors.New("reservation not found")

// ReservationStore persists slot holds. InsertIfAvailable is the single
// write that must be atomic: the availability check and the insert run in
// one transaction so two concurrent holds for overlapping windows cannot
// both succeed.
type ReservationStore interface {
	InsertIfAvailable(ctx context.Context, reservation *models.SlotReservation, now time.Time) error
	GetByID(ctx context.Context, reservationID string) (*models.SlotReservation, error)
	// UpdateStatus transitions a hold out of "reserved". It reports
	// ErrReservationNotFound when the id is unknown or the hold already
	// reached a terminal state, making release idempotent.
	UpdateStatus(ctx context.Context, reservationID, status string) error
	// FindLiveOverlapping returns unexpired "reserved" holds intersecting
	// the window, excluding excludeID when non-empty.
	FindLiveOverlapping(ctx context.Context, providerID, date string, start, end int, excludeID string, now time.Time) ([]models.SlotReservation, error)
	// ExpireDue flips overdue "reserved" holds to "expired" and returns them.
	ExpireDue(ctx context.Context, now time.Time) ([]models.SlotReservation, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoReservationStore struct {
	coll        *mongo.Collection
	bookingColl *mongo.Collection
}

// NewMongoReservationStore constructs a new MongoDB ReservationStore.
func NewMongoReservationStore() ReservationStore {
	db := database.MongoClient.Database("bookwell")
	return &mongoReservationStore{
		coll:        db.Collection("reservations"),
		bookingColl: db.Collection("bookings"),
	}
}
