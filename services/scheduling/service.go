package scheduling

import (
	"context"
	"fmt"

	"coachly/models"
	"coachly/services/availability"
	"coachly/utils"

	"go.uber.org/zap"
)

// defaultSlotDuration is applied when a rule is created without one.
const defaultSlotDuration = 60

func (s *DefaultScheduleService) CreateRule(ctx context.Context, req models.CreateRuleRequest) (*models.RecurringRule, error) {
	logger := utils.GetLogger()

	if req.DayOfWeek == nil || *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
		return nil, availability.NewInvalidArgument("dayOfWeek", "must be 0 (Sunday) through 6 (Saturday)")
	}
	startMin, err := availability.ParseClock(req.StartTime)
	if err != nil {
		return nil, availability.NewInvalidArgument("startTime", err.Error())
	}
	endMin, err := availability.ParseClock(req.EndTime)
	if err != nil {
		return nil, availability.NewInvalidArgument("endTime", err.Error())
	}
	if startMin >= endMin {
		return nil, availability.NewInvalidArgument("startTime", fmt.Sprintf("start %s must be before end %s", req.StartTime, req.EndTime))
	}
	duration := req.SlotDuration
	if duration == 0 {
		duration = defaultSlotDuration
	}
	if duration < 0 {
		return nil, availability.NewInvalidArgument("slotDuration", fmt.Sprintf("must be positive, got %d", req.SlotDuration))
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rule := &models.RecurringRule{
		CoachID:      req.CoachID,
		DayOfWeek:    *req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SessionType:  req.SessionType,
		SlotDuration: duration,
		IsActive:     active,
	}
	if err := s.Repo.CreateRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	s.invalidateAvailability(ctx, rule.CoachID)
	logger.Info("recurring rule created",
		zap.String("ruleID", rule.ID),
		zap.String("coachID", rule.CoachID),
		zap.Int("dayOfWeek", rule.DayOfWeek))
	return rule, nil
}

func (s *DefaultScheduleService) ListRules(ctx context.Context, coachID string) ([]models.RecurringRule, error) {
	return s.Repo.ListRulesByCoach(ctx, coachID)
}

func (s *DefaultScheduleService) UpdateRule(ctx context.Context, id string, req models.UpdateRuleRequest) (*models.RecurringRule, error) {
	existing, err := s.Repo.GetRuleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rule not found: %w", err)
	}

	updates := map[string]interface{}{}
	startTime, endTime := existing.StartTime, existing.EndTime

	if req.DayOfWeek != nil {
		if *req.DayOfWeek < 0 || *req.DayOfWeek > 6 {
			return nil, availability.NewInvalidArgument("dayOfWeek", "must be 0 (Sunday) through 6 (Saturday)")
		}
		updates["dayOfWeek"] = *req.DayOfWeek
	}
	if req.StartTime != nil {
		startTime = *req.StartTime
		updates["startTime"] = startTime
	}
	if req.EndTime != nil {
		endTime = *req.EndTime
		updates["endTime"] = endTime
	}
	startMin, err := availability.ParseClock(startTime)
	if err != nil {
		return nil, availability.NewInvalidArgument("startTime", err.Error())
	}
	endMin, err := availability.ParseClock(endTime)
	if err != nil {
		return nil, availability.NewInvalidArgument("endTime", err.Error())
	}
	if startMin >= endMin {
		return nil, availability.NewInvalidArgument("startTime", fmt.Sprintf("start %s must be before end %s", startTime, endTime))
	}
	if req.SessionType != nil {
		if *req.SessionType == "" {
			return nil, availability.NewInvalidArgument("sessionType", "must not be empty")
		}
		updates["sessionType"] = *req.SessionType
	}
	if req.SlotDuration != nil {
		if *req.SlotDuration <= 0 {
			return nil, availability.NewInvalidArgument("slotDuration", fmt.Sprintf("must be positive, got %d", *req.SlotDuration))
		}
		updates["slotDuration"] = *req.SlotDuration
	}
	if req.IsActive != nil {
		updates["isActive"] = *req.IsActive
	}
	if len(updates) == 0 {
		return existing, nil
	}

	rule, err := s.Repo.UpdateRule(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update rule: %w", err)
	}
	s.invalidateAvailability(ctx, rule.CoachID)
	return rule, nil
}

func (s *DefaultScheduleService) DeleteRule(ctx context.Context, id string) error {
	existing, err := s.Repo.GetRuleByID(ctx, id)
	if err != nil {
		return fmt.Errorf("rule not found: %w", err)
	}
	if err := s.Repo.DeleteRule(ctx, id); err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	s.invalidateAvailability(ctx, existing.CoachID)
	return nil
}

func (s *DefaultScheduleService) CreateException(ctx context.Context, req models.CreateExceptionRequest) (*models.ExceptionInterval, error) {
	if req.Reason != models.ExceptionReasonBlocked && req.Reason != models.ExceptionReasonHoliday {
		return nil, availability.NewInvalidArgument("reason", fmt.Sprintf("must be %q or %q, got %q", models.ExceptionReasonBlocked, models.ExceptionReasonHoliday, req.Reason))
	}
	if !req.Start.Before(req.End) {
		return nil, availability.NewInvalidArgument("start", "must be before end")
	}

	ex := &models.ExceptionInterval{
		CoachID: req.CoachID,
		Start:   req.Start.UTC(),
		End:     req.End.UTC(),
		Reason:  req.Reason,
	}
	if err := s.Repo.CreateException(ctx, ex); err != nil {
		return nil, fmt.Errorf("failed to create exception: %w", err)
	}
	s.invalidateAvailability(ctx, ex.CoachID)
	return ex, nil
}

// ListExceptionsForDay fetches the exceptions intersecting one civil day,
// windowed with the same day-boundary logic the slot computation uses.
func (s *DefaultScheduleService) ListExceptionsForDay(ctx context.Context, coachID, date string) ([]models.ExceptionInterval, error) {
	from, to, err := availability.DayBounds(date, s.Timezone)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListExceptionsInRange(ctx, coachID, from, to)
}

func (s *DefaultScheduleService) DeleteException(ctx context.Context, id string) error {
	existing, err := s.Repo.GetExceptionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("exception not found: %w", err)
	}
	if existing.Reason == models.ExceptionReasonBooked {
		return availability.NewInvalidArgument("id", "booked exceptions are removed by cancelling their booking")
	}
	if err := s.Repo.DeleteException(ctx, id); err != nil {
		return fmt.Errorf("failed to delete exception: %w", err)
	}
	s.invalidateAvailability(ctx, existing.CoachID)
	return nil
}

// invalidateAvailability bumps the coach's cache generation so stale cached
// days stop being served. Cache trouble is never fatal to the write.
func (s *DefaultScheduleService) invalidateAvailability(ctx context.Context, coachID string) {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Incr(ctx, utils.AvailabilityVersionPrefix+coachID).Err(); err != nil {
		utils.GetLogger().Warn("failed to bump availability cache version",
			zap.String("coachID", coachID), zap.Error(err))
	}
}
