// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"time"

	"coachly/database"
	"coachly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository persists the two read models the availability engine
// consumes: recurring weekly rules and ad-hoc exception intervals.
type ScheduleRepository interface {
	CreateRule(ctx context.Context, rule *models.RecurringRule) error
	GetRuleByID(ctx context.Context, id string) (*models.RecurringRule, error)
	ListRulesByCoach(ctx context.Context, coachID string) ([]models.RecurringRule, error)
	ListActiveRules(ctx context.Context, coachID, sessionType string, dayOfWeek int) ([]models.RecurringRule, error)
	UpdateRule(ctx context.Context, id string, updates map[string]interface{}) (*models.RecurringRule, error)
	DeleteRule(ctx context.Context, id string) error

	CreateException(ctx context.Context, ex *models.ExceptionInterval) error
	GetExceptionByID(ctx context.Context, id string) (*models.ExceptionInterval, error)
	ListExceptionsInRange(ctx context.Context, coachID string, from, to time.Time) ([]models.ExceptionInterval, error)
	DeleteException(ctx context.Context, id string) error
	DeleteExceptionByBookingID(ctx context.Context, bookingID string) error

	EnsureIndexes() error
}

type mongoScheduleRepo struct {
	rulesColl      *mongo.Collection
	exceptionsColl *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("coachly")
	return &mongoScheduleRepo{
		rulesColl:      db.Collection("recurring_rules"),
		exceptionsColl: db.Collection("exception_intervals"),
	}
}
