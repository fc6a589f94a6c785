// File: database/repository/sessiontype/crud.go
package sessiontypeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachly/models"
)

func (r *mongoSessionTypeRepo) Upsert(ctx context.Context, st *models.SessionType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	st.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"key":             st.Key,
			"name":            st.Name,
			"description":     st.Description,
			"durationMinutes": st.DurationMinutes,
			"priceCents":      st.PriceCents,
			"active":          st.Active,
			"updatedAt":       st.UpdatedAt,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"key": st.Key}, update, opts)
	return err
}

func (r *mongoSessionTypeRepo) GetByKey(ctx context.Context, key string) (*models.SessionType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.SessionType
	if err := r.coll.FindOne(ctx, bson.M{"key": key}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *mongoSessionTypeRepo) ListActive(ctx context.Context) ([]models.SessionType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "key", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []models.SessionType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *mongoSessionTypeRepo) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"key": key})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the session_types collection.
func (r *mongoSessionTypeRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_key"),
	})
	if err != nil {
		return fmt.Errorf("failed to create session type indexes: %w", err)
	}
	return nil
}
