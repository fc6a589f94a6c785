package scheduling

import (
	"context"

	scheduleRepo "coachly/database/repository/schedule"
	"coachly/models"

	"github.com/go-redis/redis/v8"
)

// ScheduleService manages a coach's recurring rules and blackout exceptions.
// Every write validates exhaustively at this boundary so malformed rows never
// reach the slot computation.
type ScheduleService interface {
	CreateRule(ctx context.Context, req models.CreateRuleRequest) (*models.RecurringRule, error)
	ListRules(ctx context.Context, coachID string) ([]models.RecurringRule, error)
	UpdateRule(ctx context.Context, id string, req models.UpdateRuleRequest) (*models.RecurringRule, error)
	DeleteRule(ctx context.Context, id string) error

	CreateException(ctx context.Context, req models.CreateExceptionRequest) (*models.ExceptionInterval, error)
	ListExceptionsForDay(ctx context.Context, coachID, date string) ([]models.ExceptionInterval, error)
	DeleteException(ctx context.Context, id string) error
}

// DefaultScheduleService is the production implementation.
type DefaultScheduleService struct {
	Repo        scheduleRepo.ScheduleRepository
	CacheClient *redis.Client // availability response cache, invalidated on writes
	Timezone    string        // reference timezone for civil-day windows
}
