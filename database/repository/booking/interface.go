// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"coachly/database"
	"coachly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings and owns the write-side race between
// "compute available slots" and "book one of them": ConfirmTransactionally
// must admit at most one booking per overlapping interval.
type BookingRepository interface {
	ConfirmTransactionally(ctx context.Context, booking *models.Booking, exception *models.ExceptionInterval) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByCoach(ctx context.Context, coachID string, from, to time.Time) ([]models.Booking, error)
	MarkCancelled(ctx context.Context, id string) (*models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	bookingsColl   *mongo.Collection
	exceptionsColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("coachly")
	return &mongoBookingRepo{
		bookingsColl:   db.Collection("bookings"),
		exceptionsColl: db.Collection("exception_intervals"),
	}
}
