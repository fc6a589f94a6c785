// File: database/repository/sessiontype/interface.go
package sessiontypeRepo

import (
	"context"

	"coachly/database"
	"coachly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SessionTypeRepository persists the catalogue of offered session kinds.
type SessionTypeRepository interface {
	Upsert(ctx context.Context, st *models.SessionType) error
	GetByKey(ctx context.Context, key string) (*models.SessionType, error)
	ListActive(ctx context.Context) ([]models.SessionType, error)
	Delete(ctx context.Context, key string) error
	EnsureIndexes() error
}

type mongoSessionTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionTypeRepo constructs a new MongoDB SessionTypeRepository.
func NewMongoSessionTypeRepo() SessionTypeRepository {
	db := database.MongoClient.Database("coachly")
	return &mongoSessionTypeRepo{
		coll: db.Collection("session_types"),
	}
}
