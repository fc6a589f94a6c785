package booking

import (
	"context"
	"time"

	bookingRepo "coachly/database/repository/booking"
	scheduleRepo "coachly/database/repository/schedule"
	"coachly/models"
	"coachly/services/notification"
	"coachly/services/sessiontype"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// BookingService is the orchestration layer around the availability engine:
// it loads the two read models for a day, runs the computation, and owns the
// confirm/cancel lifecycle that mirrors bookings into exception intervals.
type BookingService interface {
	GetAvailableSlots(ctx context.Context, coachID, date, sessionType string) (*models.AvailableSlotsResponse, error)
	ConfirmBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingConfirmationResponse, error)
	CancelBooking(ctx context.Context, id string) error
	ListBookingsForDay(ctx context.Context, coachID, date string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	SessionTypes sessiontype.SessionTypeService
	Notification notification.NotificationService
	AsynqClient  *asynq.Client // optional; reminders are skipped when nil
	CacheClient  *redis.Client // optional availability response cache

	// Timezone is the site's reference zone; PastBufferMinutes the booking
	// lead time (zero means the engine default).
	Timezone          string
	PastBufferMinutes int

	// Now is stubbed in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
