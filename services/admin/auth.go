package admin

import (
	"context"
	"errors"
	"time"

	"coachly/config"
	"coachly/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of an admin session token.
const TokenTTL = 12 * time.Hour

// ErrInvalidCredentials is returned for a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid admin credentials")

// AuthService signs administrators in and revokes their sessions.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
	Revoke(ctx context.Context, token string) error
}

// DefaultAuthService validates the configured admin credential pair and
// issues JWTs. Issued tokens are tracked (hashed) in the auth cache so they
// can be revoked before expiry.
type DefaultAuthService struct {
	AuthCache *redis.Client
}

func (s *DefaultAuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	logger := utils.GetLogger()

	if email == "" || email != config.AppConfig.AdminEmail {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(config.AppConfig.AdminPasswordHash), []byte(password)); err != nil {
		logger.Warn("admin sign-in rejected", zap.String("email", email))
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken("admin", email, TokenTTL)
	if err != nil {
		return "", err
	}
	if s.AuthCache != nil {
		key := utils.AuthCachePrefix + utils.HashToken(token)
		if err := s.AuthCache.Set(ctx, key, email, TokenTTL).Err(); err != nil {
			return "", err
		}
	}
	logger.Info("admin signed in", zap.String("email", email))
	return token, nil
}

func (s *DefaultAuthService) Revoke(ctx context.Context, token string) error {
	if s.AuthCache == nil {
		return nil
	}
	return s.AuthCache.Del(ctx, utils.AuthCachePrefix+utils.HashToken(token)).Err()
}
