package sessiontype

import (
	"context"
	"encoding/json"
	"fmt"

	sessiontypeRepo "coachly/database/repository/sessiontype"
	"coachly/models"
	"coachly/services/availability"
	"coachly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SessionTypeService exposes the catalogue of offered session kinds.
type SessionTypeService interface {
	Resolve(ctx context.Context, key string) (*models.SessionType, error)
	ListActive(ctx context.Context) ([]models.SessionType, error)
	Upsert(ctx context.Context, req models.UpsertSessionTypeRequest) (*models.SessionType, error)
	Delete(ctx context.Context, key string) error
}

// DefaultSessionTypeService is the production implementation, with a Redis
// cache-aside over the active catalogue.
type DefaultSessionTypeService struct {
	Repo        sessiontypeRepo.SessionTypeRepository
	CacheClient *redis.Client
}

// Resolve returns the active session type for key, or InvalidArgument when
// the key is unknown or retired.
func (s *DefaultSessionTypeService) Resolve(ctx context.Context, key string) (*models.SessionType, error) {
	types, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range types {
		if types[i].Key == key {
			return &types[i], nil
		}
	}
	return nil, availability.NewInvalidArgument("sessionType", fmt.Sprintf("unknown session type %q", key))
}

func (s *DefaultSessionTypeService) ListActive(ctx context.Context) ([]models.SessionType, error) {
	logger := utils.GetLogger()

	if s.CacheClient != nil {
		cached, err := s.CacheClient.Get(ctx, utils.SessionTypeCacheKey).Result()
		if err == nil {
			var types []models.SessionType
			if err := json.Unmarshal([]byte(cached), &types); err == nil {
				return types, nil
			}
			logger.Warn("corrupt session type cache entry, refetching", zap.Error(err))
		}
	}

	types, err := s.Repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list session types: %w", err)
	}

	if s.CacheClient != nil {
		if data, err := json.Marshal(types); err == nil {
			if err := s.CacheClient.Set(ctx, utils.SessionTypeCacheKey, data, utils.SessionTypeCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache session types", zap.Error(err))
			}
		}
	}
	return types, nil
}

func (s *DefaultSessionTypeService) Upsert(ctx context.Context, req models.UpsertSessionTypeRequest) (*models.SessionType, error) {
	if req.DurationMinutes <= 0 {
		return nil, availability.NewInvalidArgument("durationMinutes", fmt.Sprintf("must be positive, got %d", req.DurationMinutes))
	}
	if req.PriceCents < 0 {
		return nil, availability.NewInvalidArgument("priceCents", "must not be negative")
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	st := &models.SessionType{
		Key:             req.Key,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		PriceCents:      req.PriceCents,
		Active:          active,
	}
	if err := s.Repo.Upsert(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to upsert session type: %w", err)
	}
	s.dropCache(ctx)
	return st, nil
}

func (s *DefaultSessionTypeService) Delete(ctx context.Context, key string) error {
	if err := s.Repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete session type: %w", err)
	}
	s.dropCache(ctx)
	return nil
}

func (s *DefaultSessionTypeService) dropCache(ctx context.Context) {
	if s.CacheClient == nil {
		return
	}
	if err := s.CacheClient.Del(ctx, utils.SessionTypeCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("failed to drop session type cache", zap.Error(err))
	}
}
