// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"

	"bookwell/database"
	"bookwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository exposes the booking lookups the scheduling engine needs.
// "Active" always means status != cancelled.
type BookingRepository interface {
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	// FindActiveOverlapping returns the provider's active bookings whose
	// [start, end) window on the given date intersects [start, end),
	// excluding excludeID when non-empty (reschedule checks).
	FindActiveOverlapping(ctx context.Context, providerID, date string, start, end int, excludeID string) ([]models.Booking, error)
	// FindActiveOverlappingForCustomer is the symmetric check against the
	// customer's own bookings across all providers.
	FindActiveOverlappingForCustomer(ctx context.Context, customerID, date string, start, end int, excludeID string) ([]models.Booking, error)
	// GetForProviderDate lists the provider's active bookings on a date.
	GetForProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	UpdateStatus(ctx context.Context, bookingID, status string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("bookwell")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
