// File: database/repository/provider/interface.go
package providerRepo

import (
	"context"

	"bookwell/database"
	"bookwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository exposes provider profile and weekly schedule lookups.
// The scheduling engine treats schedules as read-only.
type ProviderRepository interface {
	GetByID(ctx context.Context, providerID string) (*models.Provider, error)
	GetSchedule(ctx context.Context, providerID string) (models.WeeklySchedule, error)
}

type mongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new MongoDB ProviderRepository.
func NewMongoProviderRepo() ProviderRepository {
	db := database.MongoClient.Database("bookwell")
	return &mongoProviderRepo{
		coll: db.Collection("providers"),
	}
}
