package sessiontype

import (
	"context"
	"testing"
	"time"

	"coachly/models"
	"coachly/services/availability"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeSessionTypeRepo struct {
	types map[string]*models.SessionType
}

func newFakeSessionTypeRepo() *fakeSessionTypeRepo {
	return &fakeSessionTypeRepo{types: make(map[string]*models.SessionType)}
}

func (f *fakeSessionTypeRepo) Upsert(ctx context.Context, st *models.SessionType) error {
	now := time.Now().UTC()
	if existing, ok := f.types[st.Key]; ok {
		st.CreatedAt = existing.CreatedAt
	} else {
		st.CreatedAt = now
	}
	st.UpdatedAt = now
	stored := *st
	f.types[st.Key] = &stored
	return nil
}

func (f *fakeSessionTypeRepo) GetByKey(ctx context.Context, key string) (*models.SessionType, error) {
	if st, ok := f.types[key]; ok {
		return st, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSessionTypeRepo) ListActive(ctx context.Context) ([]models.SessionType, error) {
	var out []models.SessionType
	for _, st := range f.types {
		if st.Active {
			out = append(out, *st)
		}
	}
	return out, nil
}

func (f *fakeSessionTypeRepo) Delete(ctx context.Context, key string) error {
	delete(f.types, key)
	return nil
}

func (f *fakeSessionTypeRepo) EnsureIndexes() error { return nil }

func seedCatalogue(t *testing.T, svc *DefaultSessionTypeService) {
	t.Helper()
	for _, req := range []models.UpsertSessionTypeRequest{
		{Key: "vod-review", Name: "VOD Review", DurationMinutes: 60, PriceCents: 5000},
		{Key: "live-coaching", Name: "Live Coaching", DurationMinutes: 90, PriceCents: 9000},
	} {
		if _, err := svc.Upsert(context.Background(), req); err != nil {
			t.Fatalf("seed %s: %v", req.Key, err)
		}
	}
}

func TestResolve(t *testing.T) {
	svc := &DefaultSessionTypeService{Repo: newFakeSessionTypeRepo()}
	seedCatalogue(t, svc)

	st, err := svc.Resolve(context.Background(), "live-coaching")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if st.DurationMinutes != 90 {
		t.Errorf("duration: got %d, want 90", st.DurationMinutes)
	}
}

func TestResolveUnknownKey(t *testing.T) {
	svc := &DefaultSessionTypeService{Repo: newFakeSessionTypeRepo()}
	seedCatalogue(t, svc)

	if _, err := svc.Resolve(context.Background(), "career-chat"); !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument", err)
	}
}

func TestResolveRetiredKey(t *testing.T) {
	repo := newFakeSessionTypeRepo()
	svc := &DefaultSessionTypeService{Repo: repo}
	seedCatalogue(t, svc)

	inactive := false
	if _, err := svc.Upsert(context.Background(), models.UpsertSessionTypeRequest{
		Key: "vod-review", Name: "VOD Review", DurationMinutes: 60, Active: &inactive,
	}); err != nil {
		t.Fatalf("retire: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), "vod-review"); !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument for a retired type", err)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := &DefaultSessionTypeService{Repo: newFakeSessionTypeRepo()}

	if _, err := svc.Upsert(context.Background(), models.UpsertSessionTypeRequest{
		Key: "vod-review", Name: "VOD Review", DurationMinutes: 0,
	}); !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument for zero duration", err)
	}
	if _, err := svc.Upsert(context.Background(), models.UpsertSessionTypeRequest{
		Key: "vod-review", Name: "VOD Review", DurationMinutes: 60, PriceCents: -1,
	}); !availability.IsInvalidArgument(err) {
		t.Fatalf("got %v, want invalid argument for negative price", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newFakeSessionTypeRepo()
	svc := &DefaultSessionTypeService{Repo: repo}
	seedCatalogue(t, svc)

	if err := svc.Delete(context.Background(), "vod-review"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := repo.types["vod-review"]; ok {
		t.Fatal("session type still present after delete")
	}
}
