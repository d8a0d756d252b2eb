package session

import (
	"context"
	"time"

	"gangosri-portal/internal/app/config"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/app/services/shared/redis"
	"gangosri-portal/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository redis.RedisRepository
	Log             *zap.Logger
	ExpiredTime     time.Duration
}

func NewSessionService(redisRepository redis.RedisRepository, logger *zap.Logger, internalConfig *config.InternalConfig) SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		Log:             logger,
		ExpiredTime:     time.Duration(internalConfig.Session.ExpiredTimeInHours) * time.Hour,
	}
}

// Create persists the token and profile as one Redis value under a fresh
// session ID. A single SET keeps the pair atomic: there is no observation
// point where only one half exists.
func (svc *sessionService) Create(ctx context.Context, token string, user models.UserProfile) (string, error) {
	sessionID := uuid.NewString()
	sessionData := &models.Session{
		Token: token,
		User:  user,
	}

	err := svc.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+sessionID, sessionData, svc.ExpiredTime)
	if err != nil {
		return "", err
	}

	svc.Log.Info("session created",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingUserRoleKey, user.Role),
	)
	return sessionID, nil
}

// Find restores a previously persisted session. A missing key, malformed
// payload, or half-populated pair all read back as unauthenticated (nil)
// rather than an error; repeated calls without an intervening Create or
// Destroy return the same state.
func (svc *sessionService) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" {
		return nil, nil
	}

	data, err := svc.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	sessionData := new(models.Session)
	if err := json.Unmarshal([]byte(data), sessionData); err != nil {
		svc.Log.Warn("discarding malformed session payload",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
		return nil, nil
	}
	if !sessionData.IsComplete() {
		return nil, nil
	}

	return sessionData, nil
}

// Destroy removes the persisted pair with one DEL. Deleting an absent
// session is a no-op.
func (svc *sessionService) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	err := svc.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return err
	}

	svc.Log.Info("session destroyed",
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return nil
}
