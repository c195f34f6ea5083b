// File: database/repository/reservation/reservation_mongo.go
package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertIfAvailable re-checks the window against active bookings and live
// holds, then inserts the reservation. Both steps run inside one mongo
// transaction; a concurrent conflicting hold aborts with ErrSlotTaken.
func (s *mongoReservationStore) InsertIfAvailable(ctx context.Context, reservation *models.SlotReservation, now time.Time) error {
	client := s.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		bookingFilter := bson.M{
			"provider_id": reservation.ProviderID,
			"date":        reservation.Date,
			"start":       bson.M{"$lt": reservation.End},
			"end":         bson.M{"$gt": reservation.Start},
			"status":      bson.M{"$ne": models.BookingStatusCancelled},
		}
		count, err := s.bookingColl.CountDocuments(sc, bookingFilter)
		if err != nil {
			return fmt.Errorf("booking conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		holdFilter := bson.M{
			"provider_id":    reservation.ProviderID,
			"date":           reservation.Date,
			"start":          bson.M{"$lt": reservation.End},
			"end":            bson.M{"$gt": reservation.Start},
			"status":         models.ReservationStatusReserved,
			"reserved_until": bson.M{"$gt": now},
		}
		count, err = s.coll.CountDocuments(sc, holdFilter)
		if err != nil {
			return fmt.Errorf("reservation conflict check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := s.coll.InsertOne(sc, reservation); err != nil {
			return fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}

func (s *mongoReservationStore) GetByID(ctx context.Context, reservationID string) (*models.SlotReservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var reservation models.SlotReservation
	err := s.coll.FindOne(ctx, bson.M{"id": reservationID}).Decode(&reservation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to fetch reservation %s: %w", reservationID, err)
	}
	return &reservation, nil
}

func (s *mongoReservationStore) UpdateStatus(ctx context.Context, reservationID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Only a live hold may leave "reserved"; terminal states stay put.
	filter := bson.M{"id": reservationID, "status": models.ReservationStatusReserved}
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reservation status: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (s *mongoReservationStore) FindLiveOverlapping(ctx context.Context, providerID, date string, start, end int, excludeID string, now time.Time) ([]models.SlotReservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"provider_id":    providerID,
		"date":           date,
		"start":          bson.M{"$lt": end},
		"end":            bson.M{"$gt": start},
		"status":         models.ReservationStatusReserved,
		"reserved_until": bson.M{"$gt": now},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("reservation query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.SlotReservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("failed to decode reservations: %w", err)
	}
	return reservations, nil
}

func (s *mongoReservationStore) ExpireDue(ctx context.Context, now time.Time) ([]models.SlotReservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"status":         models.ReservationStatusReserved,
		"reserved_until": bson.M{"$lte": now},
	}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("expiry query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var due []models.SlotReservation
	if err := cursor.All(ctx, &due); err != nil {
		return nil, fmt.Errorf("failed to decode due reservations: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}

	update := bson.M{"$set": bson.M{"status": models.ReservationStatusExpired}}
	if _, err := s.coll.UpdateMany(ctx, filter, update); err != nil {
		return nil, fmt.Errorf("failed to expire reservations: %w", err)
	}
	return due, nil
}
