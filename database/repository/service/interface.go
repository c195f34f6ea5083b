// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"bookwell/database"
	"bookwell/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository resolves a service to its duration for slot generation.
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("bookwell")
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
