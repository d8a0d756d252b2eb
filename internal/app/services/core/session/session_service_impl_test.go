package session

import (
	"context"
	"testing"
	"time"

	"gangosri-portal/internal/app/config"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryRedisRepository keeps values in a map so the session round trip can
// be exercised without a Redis instance.
type memoryRedisRepository struct {
	values map[string]string
}

func newMemoryRedisRepository() *memoryRedisRepository {
	return &memoryRedisRepository{values: make(map[string]string)}
}

func (m *memoryRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = string(data)
	return nil
}

func (m *memoryRedisRepository) Get(_ context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *memoryRedisRepository) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func newTestSessionService(repo *memoryRedisRepository) SessionService {
	internalConfig := &config.InternalConfig{
		Session: config.Session{ExpiredTimeInHours: 12},
	}
	return &sessionService{
		RedisRepository: repo,
		Log:             zap.NewNop(),
		ExpiredTime:     time.Duration(internalConfig.Session.ExpiredTimeInHours) * time.Hour,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRedisRepository()
	svc := newTestSessionService(repo)

	user := models.UserProfile{ID: "u-1", FullName: "Dr Mehta", Role: constvars.RoleDoctor}

	sessionID, err := svc.Create(ctx, "token-1", user)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	t.Run("token and profile stored as one value", func(t *testing.T) {
		assert.Len(t, repo.values, 1)
		raw := repo.values[constvars.RedisSessionKeyPrefix+sessionID]
		assert.Contains(t, raw, "token-1")
		assert.Contains(t, raw, "Dr Mehta")
	})

	t.Run("find restores the pair", func(t *testing.T) {
		sess, err := svc.Find(ctx, sessionID)
		require.NoError(t, err)
		require.NotNil(t, sess)
		assert.Equal(t, "token-1", sess.Token)
		assert.Equal(t, user, sess.User)
	})

	t.Run("find is idempotent", func(t *testing.T) {
		first, err := svc.Find(ctx, sessionID)
		require.NoError(t, err)
		second, err := svc.Find(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("destroy removes both halves at once", func(t *testing.T) {
		require.NoError(t, svc.Destroy(ctx, sessionID))
		assert.Empty(t, repo.values)

		sess, err := svc.Find(ctx, sessionID)
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("destroying an absent session is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.Destroy(ctx, sessionID))
	})
}

func TestSessionFindEdgeCases(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRedisRepository()
	svc := newTestSessionService(repo)

	t.Run("empty session ID", func(t *testing.T) {
		sess, err := svc.Find(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("unknown session ID", func(t *testing.T) {
		sess, err := svc.Find(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("malformed payload reads back as unauthenticated", func(t *testing.T) {
		repo.values[constvars.RedisSessionKeyPrefix+"broken"] = "{not json"
		sess, err := svc.Find(ctx, "broken")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})

	t.Run("half-populated pair reads back as unauthenticated", func(t *testing.T) {
		repo.values[constvars.RedisSessionKeyPrefix+"tokenless"] = `{"user": {"id": "u-1", "role": "NURSE"}}`
		sess, err := svc.Find(ctx, "tokenless")
		require.NoError(t, err)
		assert.Nil(t, sess)
	})
}
