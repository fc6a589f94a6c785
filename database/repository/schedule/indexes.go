// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the schedule collections.
func (r *mongoScheduleRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ruleIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_rule_id"),
		},
		// Primary availability read: coach + session type + weekday + active.
		{
			Keys: bson.D{
				{Key: "coachId", Value: 1},
				{Key: "sessionType", Value: 1},
				{Key: "dayOfWeek", Value: 1},
				{Key: "isActive", Value: 1},
			},
			Options: options.Index().SetName("coach_type_day_active_idx"),
		},
	}
	if _, err := r.rulesColl.Indexes().CreateMany(ctx, ruleIndexes); err != nil {
		return fmt.Errorf("failed to create recurring rule indexes: %w", err)
	}

	exceptionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_exception_id"),
		},
		// Range scans over a coach's day window.
		{
			Keys: bson.D{
				{Key: "coachId", Value: 1},
				{Key: "start", Value: 1},
				{Key: "end", Value: 1},
			},
			Options: options.Index().SetName("coach_start_end_idx"),
		},
		{
			Keys:    bson.D{{Key: "bookingId", Value: 1}},
			Options: options.Index().SetSparse(true).SetName("booking_id_idx"),
		},
	}
	if _, err := r.exceptionsColl.Indexes().CreateMany(ctx, exceptionIndexes); err != nil {
		return fmt.Errorf("failed to create exception indexes: %w", err)
	}
	return nil
}
