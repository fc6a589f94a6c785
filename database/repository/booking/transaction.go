// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"coachly/models"
)

// ErrSlotTaken is returned when another booking claimed an overlapping
// interval between slot computation and confirmation.
var ErrSlotTaken = errors.New("slot already taken")

// ConfirmTransactionally inserts the booking and its paired "booked"
// exception in one multi-document transaction. Inside the transaction it
// re-counts exceptions overlapping the booked interval; a concurrent
// confirmation for the same window makes exactly one of the two writers see a
// conflict and abort with ErrSlotTaken.
func (r *mongoBookingRepo) ConfirmTransactionally(
	ctx context.Context,
	booking *models.Booking,
	exception *models.ExceptionInterval,
) error {
	client := r.bookingsColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		// Half-open overlap, matching the availability engine's test.
		overlapFilter := bson.M{
			"coachId": booking.CoachID,
			"start":   bson.M{"$lt": booking.End},
			"end":     bson.M{"$gt": booking.Start},
		}
		count, err := r.exceptionsColl.CountDocuments(sc, overlapFilter)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := r.bookingsColl.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		if _, err := r.exceptionsColl.InsertOne(sc, exception); err != nil {
			return fmt.Errorf("insert booked exception failed: %w", err)
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sess.StartTransaction(); err != nil {
			return fmt.Errorf("could not start transaction: %w", err)
		}
		if err := txnFn(sc); err != nil {
			if abortErr := sess.AbortTransaction(sc); abortErr != nil {
				return fmt.Errorf("abort failed after %v: %w", err, abortErr)
			}
			return err
		}
		return sess.CommitTransaction(sc)
	})
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.bookingsColl.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) ListByCoach(ctx context.Context, coachID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"coachId": coachID,
		"start":   bson.M{"$gte": from, "$lt": to},
	}
	cursor, err := r.bookingsColl.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *mongoBookingRepo) MarkCancelled(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    models.BookingStatusCancelled,
		"updatedAt": time.Now().UTC(),
	}}
	var booking models.Booking
	err := r.bookingsColl.FindOneAndUpdate(ctx, bson.M{"id": id}, update).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
