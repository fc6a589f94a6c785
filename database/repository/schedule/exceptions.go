// File: database/repository/schedule/exceptions.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"coachly/models"
)

func (r *mongoScheduleRepo) CreateException(ctx context.Context, ex *models.ExceptionInterval) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	ex.CreatedAt = time.Now().UTC()

	_, err := r.exceptionsColl.InsertOne(ctx, ex)
	return err
}

func (r *mongoScheduleRepo) GetExceptionByID(ctx context.Context, id string) (*models.ExceptionInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ex models.ExceptionInterval
	if err := r.exceptionsColl.FindOne(ctx, bson.M{"id": id}).Decode(&ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// ListExceptionsInRange returns every exception intersecting [from, to).
// Callers derive the window with availability.DayBounds so the fetch boundary
// matches the engine's civil-day boundary.
func (r *mongoScheduleRepo) ListExceptionsInRange(ctx context.Context, coachID string, from, to time.Time) ([]models.ExceptionInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"coachId": coachID,
		"start":   bson.M{"$lt": to},
		"end":     bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.exceptionsColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exceptions []models.ExceptionInterval
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, err
	}
	return exceptions, nil
}

func (r *mongoScheduleRepo) DeleteException(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.exceptionsColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteExceptionByBookingID(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.exceptionsColl.DeleteOne(ctx, bson.M{"bookingId": bookingID})
	return err
}
