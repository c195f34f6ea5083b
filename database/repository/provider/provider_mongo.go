// File: database/repository/provider/provider_mongo.go
package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrProviderNotFound is returned when no provider matches the given id.
var ErrProviderNotFound = errors.New("provider not found")

func (r *mongoProviderRepo) GetByID(ctx context.Context, providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": providerID}).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProviderNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider %s: %w", providerID, err)
	}
	return &provider, nil
}

func (r *mongoProviderRepo) GetSchedule(ctx context.Context, providerID string) (models.WeeklySchedule, error) {
	provider, err := r.GetByID(ctx, providerID)
	if err != nil {
		return models.WeeklySchedule{}, err
	}
	return provider.Schedule, nil
}
