package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bookingRepo "coachly/database/repository/booking"
	"coachly/models"
	"coachly/services/availability"
	"coachly/services/tasks"
	"coachly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// displayClockLayout renders slot starts for the client, in the reference zone.
const displayClockLayout = "3:04 PM"

// reminderLead is how long before a session its reminder fires.
const reminderLead = time.Hour

// GetAvailableSlots computes the bookable start instants for one coach, civil
// day, and session type. An empty Slots list is a normal answer for a day
// without availability.
func (s *DefaultBookingService) GetAvailableSlots(ctx context.Context, coachID, date, sessionType string) (*models.AvailableSlotsResponse, error) {
	logger := utils.GetLogger()

	if cached := s.cachedSlots(ctx, coachID, date, sessionType); cached != nil {
		return cached, nil
	}

	st, err := s.SessionTypes.Resolve(ctx, sessionType)
	if err != nil {
		return nil, err
	}

	day, err := availability.ParseCivilDate(date, s.Timezone)
	if err != nil {
		return nil, err
	}

	rules, err := s.ScheduleRepo.ListActiveRules(ctx, coachID, sessionType, int(day.Weekday()))
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	// The exception fetch window uses the same civil-day boundary as the
	// slot computation; exceptions outside it cannot leak in.
	from, to, err := availability.DayBounds(date, s.Timezone)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.ScheduleRepo.ListExceptionsInRange(ctx, coachID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load exceptions: %w", err)
	}

	starts, err := availability.ComputeAvailableSlots(availability.SlotRequest{
		Date:                 date,
		SessionType:          sessionType,
		Rules:                rules,
		Exceptions:           exceptions,
		Now:                  s.now().UTC(),
		Timezone:             s.Timezone,
		SessionLengthMinutes: st.DurationMinutes,
		PastBufferMinutes:    s.PastBufferMinutes,
	})
	if err != nil {
		return nil, err
	}

	slots := make([]models.AvailableSlot, 0, len(starts))
	for _, start := range starts {
		slots = append(slots, models.AvailableSlot{
			Start:       start.UTC(),
			DisplayTime: start.In(day.Location()).Format(displayClockLayout),
		})
	}

	resp := &models.AvailableSlotsResponse{
		CoachID:     coachID,
		Date:        date,
		SessionType: sessionType,
		Timezone:    s.Timezone,
		Slots:       slots,
	}
	s.cacheSlots(ctx, resp)

	logger.Debug("availability computed",
		zap.String("coachID", coachID),
		zap.String("date", date),
		zap.String("sessionType", sessionType),
		zap.Int("slots", len(slots)))
	return resp, nil
}

// ConfirmBooking validates the requested start against a fresh slot
// computation, then persists the booking and its paired "booked" exception in
// one transaction. The transaction re-checks for overlap, so of two racing
// confirmations exactly one wins.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingConfirmationResponse, error) {
	logger := utils.GetLogger()

	st, err := s.SessionTypes.Resolve(ctx, req.SessionType)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, availability.NewInvalidArgument("timezone", fmt.Sprintf("unrecognized identifier %q", s.Timezone))
	}
	date := req.Start.In(loc).Format(availability.CivilDateLayout)

	slots, err := s.GetAvailableSlots(ctx, req.CoachID, date, req.SessionType)
	if err != nil {
		return nil, err
	}
	offered := false
	for _, slot := range slots.Slots {
		if slot.Start.Equal(req.Start) {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrSlotUnavailable
	}

	now := s.now().UTC()
	start := req.Start.UTC()
	end := start.Add(time.Duration(st.DurationMinutes) * time.Minute)

	booking := &models.Booking{
		ID:            uuid.New().String(),
		CoachID:       req.CoachID,
		SessionType:   req.SessionType,
		Start:         start,
		End:           end,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	exception := &models.ExceptionInterval{
		ID:        uuid.New().String(),
		CoachID:   req.CoachID,
		Start:     start,
		End:       end,
		Reason:    models.ExceptionReasonBooked,
		BookingID: booking.ID,
		CreatedAt: now,
	}
	booking.ExceptionID = exception.ID

	if err := s.BookingRepo.ConfirmTransactionally(ctx, booking, exception); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}
	s.invalidateAvailability(ctx, req.CoachID)

	if err := s.Notification.BookingConfirmed(ctx, *booking); err != nil {
		logger.Warn("booking confirmation notification failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
	s.enqueueReminder(*booking)

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("coachID", booking.CoachID),
		zap.Time("start", booking.Start))

	return &models.BookingConfirmationResponse{
		Booking:     *booking,
		DisplayTime: booking.Start.In(loc).Format(displayClockLayout),
	}, nil
}

// CancelBooking flips the booking to cancelled and removes its paired booked
// exception, reopening the interval for new bookings.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) error {
	logger := utils.GetLogger()

	existing, err := s.BookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("booking not found: %w", err)
	}
	if existing.Status == models.BookingStatusCancelled {
		return ErrAlreadyCancelled
	}

	booking, err := s.BookingRepo.MarkCancelled(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if err := s.ScheduleRepo.DeleteExceptionByBookingID(ctx, id); err != nil {
		// The booking is cancelled either way; a stranded exception only
		// keeps the interval blocked until an admin clears it.
		logger.Error("failed to remove booked exception",
			zap.String("bookingID", id), zap.Error(err))
	}
	s.invalidateAvailability(ctx, booking.CoachID)

	if err := s.Notification.BookingCancelled(ctx, *booking); err != nil {
		logger.Warn("booking cancellation notification failed",
			zap.String("bookingID", id), zap.Error(err))
	}
	return nil
}

// ListBookingsForDay returns a coach's bookings within one civil day.
func (s *DefaultBookingService) ListBookingsForDay(ctx context.Context, coachID, date string) ([]models.Booking, error) {
	from, to, err := availability.DayBounds(date, s.Timezone)
	if err != nil {
		return nil, err
	}
	return s.BookingRepo.ListByCoach(ctx, coachID, from, to)
}

func (s *DefaultBookingService) enqueueReminder(booking models.Booking) {
	if s.AsynqClient == nil {
		return
	}
	fireAt := booking.Start.Add(-reminderLead)
	if fireAt.Before(s.now()) {
		return
	}
	payload := models.ReminderPayload{
		BookingID: booking.ID,
		Target:    "customer",
		Title:     "Upcoming session",
		Body:      fmt.Sprintf("Your %s session starts in an hour.", booking.SessionType),
		FireDate:  fireAt.UTC().Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Warn("failed to build reminder task",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) slotCacheKey(ctx context.Context, coachID, date, sessionType string) string {
	version := "0"
	if v, err := s.CacheClient.Get(ctx, utils.AvailabilityVersionPrefix+coachID).Result(); err == nil {
		version = v
	}
	return fmt.Sprintf("%s%s:%s:%s:v%s", utils.AvailabilityCachePrefix, coachID, date, sessionType, version)
}

func (s *DefaultBookingService) cachedSlots(ctx context.Context, coachID, date, sessionType string) *models.AvailableSlotsResponse {
	if s.CacheClient == nil {
		return nil
	}
	data, err := s.CacheClient.Get(ctx, s.slotCacheKey(ctx, coachID, date, sessionType)).Result()
	if err != nil {
		return nil
	}
	var resp models.AvailableSlotsResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *DefaultBookingService) cacheSlots(ctx context.Context, resp *models.AvailableSlotsResponse) {
	if s.CacheClient == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	key := s.slotCacheKey(ctx, resp.CoachID, resp.Date, resp.SessionType)
	if err := s.CacheClient.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability response", zap.Error(err))
	}
}

func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, coachID string) {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Incr(ctx, utils.AvailabilityVersionPrefix+coachID).Err(); err != nil {
		utils.GetLogger().Warn("failed to bump availability cache version",
			zap.String("coachID", coachID), zap.Error(err))
	}
}
