package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"coachly/models"
	"coachly/services/availability"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeScheduleRepo struct {
	rules      map[string]*models.RecurringRule
	exceptions map[string]*models.ExceptionInterval
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		rules:      make(map[string]*models.RecurringRule),
		exceptions: make(map[string]*models.ExceptionInterval),
	}
}

func (f *fakeScheduleRepo) CreateRule(ctx context.Context, rule *models.RecurringRule) error {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	rule.CreatedAt = now
	rule.UpdatedAt = now
	r := *rule
	f.rules[rule.ID] = &r
	return nil
}

func (f *fakeScheduleRepo) GetRuleByID(ctx context.Context, id string) (*models.RecurringRule, error) {
	if r, ok := f.rules[id]; ok {
		return r, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeScheduleRepo) ListRulesByCoach(ctx context.Context, coachID string) ([]models.RecurringRule, error) {
	var out []models.RecurringRule
	for _, r := range f.rules {
		if r.CoachID == coachID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListActiveRules(ctx context.Context, coachID, sessionType string, dayOfWeek int) ([]models.RecurringRule, error) {
	var out []models.RecurringRule
	for _, r := range f.rules {
		if r.CoachID == coachID && r.SessionType == sessionType && r.DayOfWeek == dayOfWeek && r.IsActive {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) UpdateRule(ctx context.Context, id string, updates map[string]interface{}) (*models.RecurringRule, error) {
	r, ok := f.rules[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range updates {
		switch key {
		case "dayOfWeek":
			r.DayOfWeek = value.(int)
		case "startTime":
			r.StartTime = value.(string)
		case "endTime":
			r.EndTime = value.(string)
		case "sessionType":
			r.SessionType = value.(string)
		case "slotDuration":
			r.SlotDuration = value.(int)
		case "isActive":
			r.IsActive = value.(bool)
		}
	}
	r.UpdatedAt = time.Now().UTC()
	return r, nil
}

func (f *fakeScheduleRepo) DeleteRule(ctx context.Context, id string) error {
	delete(f.rules, id)
	return nil
}

func (f *fakeScheduleRepo) CreateException(ctx context.Context, ex *models.ExceptionInterval) error {
	if ex.ID == "" {
		ex.ID = uuid.New().String()
	}
	ex.CreatedAt = time.Now().UTC()
	e := *ex
	f.exceptions[ex.ID] = &e
	return nil
}

func (f *fakeScheduleRepo) GetExceptionByID(ctx context.Context, id string) (*models.ExceptionInterval, error) {
	if e, ok := f.exceptions[id]; ok {
		return e, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeScheduleRepo) ListExceptionsInRange(ctx context.Context, coachID string, from, to time.Time) ([]models.ExceptionInterval, error) {
	var out []models.ExceptionInterval
	for _, e := range f.exceptions {
		if e.CoachID == coachID && e.Start.Before(to) && e.End.After(from) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) DeleteException(ctx context.Context, id string) error {
	delete(f.exceptions, id)
	return nil
}

func (f *fakeScheduleRepo) DeleteExceptionByBookingID(ctx context.Context, bookingID string) error {
	for id, e := range f.exceptions {
		if e.BookingID == bookingID {
			delete(f.exceptions, id)
		}
	}
	return nil
}

func (f *fakeScheduleRepo) EnsureIndexes() error { return nil }

func newScheduleService() (*DefaultScheduleService, *fakeScheduleRepo) {
	repo := newFakeScheduleRepo()
	return &DefaultScheduleService{Repo: repo, Timezone: "America/New_York"}, repo
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestCreateRule(t *testing.T) {
	svc, repo := newScheduleService()

	rule, err := svc.CreateRule(context.Background(), models.CreateRuleRequest{
		CoachID:     "coach-1",
		DayOfWeek:   intPtr(1),
		StartTime:   "09:00",
		EndTime:     "17:00",
		SessionType: "vod-review",
	})
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}
	if rule.ID == "" {
		t.Error("expected an assigned rule ID")
	}
	if rule.SlotDuration != 60 {
		t.Errorf("slot duration default: got %d, want 60", rule.SlotDuration)
	}
	if !rule.IsActive {
		t.Error("rules default to active")
	}
	if len(repo.rules) != 1 {
		t.Fatalf("got %d stored rules, want 1", len(repo.rules))
	}
}

func TestCreateRuleValidation(t *testing.T) {
	svc, _ := newScheduleService()

	cases := []struct {
		name string
		req  models.CreateRuleRequest
	}{
		{"day out of range", models.CreateRuleRequest{CoachID: "c", DayOfWeek: intPtr(7), StartTime: "09:00", EndTime: "17:00", SessionType: "vod-review"}},
		{"missing day", models.CreateRuleRequest{CoachID: "c", StartTime: "09:00", EndTime: "17:00", SessionType: "vod-review"}},
		{"malformed start", models.CreateRuleRequest{CoachID: "c", DayOfWeek: intPtr(1), StartTime: "9am", EndTime: "17:00", SessionType: "vod-review"}},
		{"start after end", models.CreateRuleRequest{CoachID: "c", DayOfWeek: intPtr(1), StartTime: "17:00", EndTime: "09:00", SessionType: "vod-review"}},
		{"negative slot duration", models.CreateRuleRequest{CoachID: "c", DayOfWeek: intPtr(1), StartTime: "09:00", EndTime: "17:00", SessionType: "vod-review", SlotDuration: -30}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateRule(context.Background(), tc.req); !availability.IsInvalidArgument(err) {
				t.Fatalf("got %v, want invalid argument", err)
			}
		})
	}
}

func TestUpdateRule(t *testing.T) {
	svc, _ := newScheduleService()

	rule, err := svc.CreateRule(context.Background(), models.CreateRuleRequest{
		CoachID:     "coach-1",
		DayOfWeek:   intPtr(1),
		StartTime:   "09:00",
		EndTime:     "17:00",
		SessionType: "vod-review",
	})
	if err != nil {
		t.Fatalf("CreateRule: %v", err)
	}

	updated, err := svc.UpdateRule(context.Background(), rule.ID, models.UpdateRuleRequest{
		EndTime:  strPtr("12:00"),
		IsActive: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("UpdateRule: %v", err)
	}
	if updated.EndTime != "12:00" || updated.IsActive {
		t.Errorf("got end=%q active=%v", updated.EndTime, updated.IsActive)
	}

	// A partial update must not let start and end cross.
	if _, err := svc.UpdateRule(context.Background(), rule.ID, models.UpdateRuleRequest{
		EndTime: strPtr("08:00"),
	}); !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument", err)
	}
}

func TestUpdateRuleUnknownID(t *testing.T) {
	svc, _ := newScheduleService()

	_, err := svc.UpdateRule(context.Background(), "missing", models.UpdateRuleRequest{EndTime: strPtr("12:00")})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("got %v, want wrapped ErrNoDocuments", err)
	}
}

func TestCreateException(t *testing.T) {
	svc, repo := newScheduleService()

	start := time.Date(2025, time.November, 17, 15, 0, 0, 0, time.UTC)
	ex, err := svc.CreateException(context.Background(), models.CreateExceptionRequest{
		CoachID: "coach-1",
		Start:   start,
		End:     start.Add(time.Hour),
		Reason:  models.ExceptionReasonBlocked,
	})
	if err != nil {
		t.Fatalf("CreateException: %v", err)
	}
	if ex.ID == "" {
		t.Error("expected an assigned exception ID")
	}
	if len(repo.exceptions) != 1 {
		t.Fatalf("got %d stored exceptions, want 1", len(repo.exceptions))
	}
}

func TestCreateExceptionRejectsBookedReason(t *testing.T) {
	svc, _ := newScheduleService()

	start := time.Date(2025, time.November, 17, 15, 0, 0, 0, time.UTC)
	_, err := svc.CreateException(context.Background(), models.CreateExceptionRequest{
		CoachID: "coach-1",
		Start:   start,
		End:     start.Add(time.Hour),
		Reason:  models.ExceptionReasonBooked,
	})
	if !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument", err)
	}
}

func TestCreateExceptionRejectsEmptyInterval(t *testing.T) {
	svc, _ := newScheduleService()

	start := time.Date(2025, time.November, 17, 15, 0, 0, 0, time.UTC)
	_, err := svc.CreateException(context.Background(), models.CreateExceptionRequest{
		CoachID: "coach-1",
		Start:   start,
		End:     start,
		Reason:  models.ExceptionReasonBlocked,
	})
	if !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument", err)
	}
}

func TestDeleteExceptionRefusesBooked(t *testing.T) {
	svc, repo := newScheduleService()

	ex := &models.ExceptionInterval{
		CoachID:   "coach-1",
		Start:     time.Date(2025, time.November, 17, 15, 0, 0, 0, time.UTC),
		End:       time.Date(2025, time.November, 17, 16, 0, 0, 0, time.UTC),
		Reason:    models.ExceptionReasonBooked,
		BookingID: "b-1",
	}
	if err := repo.CreateException(context.Background(), ex); err != nil {
		t.Fatalf("seed exception: %v", err)
	}

	if err := svc.DeleteException(context.Background(), ex.ID); !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument", err)
	}
	if len(repo.exceptions) != 1 {
		t.Fatal("booked exception must survive a direct delete")
	}
}

func TestListExceptionsForDay(t *testing.T) {
	svc, repo := newScheduleService()

	// 2025-11-17 in New York runs 05:00Z to 05:00Z the next day. The second
	// exception sits entirely in the next civil day.
	inDay := &models.ExceptionInterval{
		CoachID: "coach-1",
		Start:   time.Date(2025, time.November, 17, 15, 0, 0, 0, time.UTC),
		End:     time.Date(2025, time.November, 17, 16, 0, 0, 0, time.UTC),
		Reason:  models.ExceptionReasonBlocked,
	}
	nextDay := &models.ExceptionInterval{
		CoachID: "coach-1",
		Start:   time.Date(2025, time.November, 18, 15, 0, 0, 0, time.UTC),
		End:     time.Date(2025, time.November, 18, 16, 0, 0, 0, time.UTC),
		Reason:  models.ExceptionReasonBlocked,
	}
	for _, ex := range []*models.ExceptionInterval{inDay, nextDay} {
		if err := repo.CreateException(context.Background(), ex); err != nil {
			t.Fatalf("seed exception: %v", err)
		}
	}

	got, err := svc.ListExceptionsForDay(context.Background(), "coach-1", "2025-11-17")
	if err != nil {
		t.Fatalf("ListExceptionsForDay: %v", err)
	}
	if len(got) != 1 || got[0].ID != inDay.ID {
		t.Fatalf("got %+v, want only the in-day exception", got)
	}
}
