package notification

import (
	"context"

	"coachly/models"
	"coachly/utils"

	"go.uber.org/zap"
)

// NotificationService is the delivery boundary for booking and reminder
// events. Delivery transports (email, chat bots) live behind this interface
// and outside this repository.
type NotificationService interface {
	BookingConfirmed(ctx context.Context, booking models.Booking) error
	BookingCancelled(ctx context.Context, booking models.Booking) error
	SessionReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotificationService records every event through the structured logger.
type LogNotificationService struct{}

func (s *LogNotificationService) BookingConfirmed(ctx context.Context, booking models.Booking) error {
	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("coachID", booking.CoachID),
		zap.String("sessionType", booking.SessionType),
		zap.Time("start", booking.Start))
	return nil
}

func (s *LogNotificationService) BookingCancelled(ctx context.Context, booking models.Booking) error {
	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", booking.ID),
		zap.String("coachID", booking.CoachID),
		zap.Time("start", booking.Start))
	return nil
}

func (s *LogNotificationService) SessionReminder(ctx context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("session reminder due",
		zap.String("bookingID", payload.BookingID),
		zap.String("target", payload.Target),
		zap.String("fireDate", payload.FireDate))
	return nil
}
