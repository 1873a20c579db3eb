package locker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.store[key] = fmt.Sprintf("%q", value)
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	if _, taken := f.store[key]; taken {
		return false, nil
	}
	f.store[key] = fmt.Sprintf("%q", value)
	return true, nil
}

func TestLockService(t *testing.T) {
	t.Run("Second Lock Attempt Fails", func(t *testing.T) {
		svc := &lockService{redisRepo: newFakeRedisRepository(), Log: zap.NewNop()}

		acquired, token, err := svc.TryLock(context.Background(), "lock:a", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, token)

		acquired, _, err = svc.TryLock(context.Background(), "lock:a", time.Minute)
		require.NoError(t, err)
		assert.False(t, acquired)
	})

	t.Run("Unlock Releases For Owner Only", func(t *testing.T) {
		repo := newFakeRedisRepository()
		svc := &lockService{redisRepo: repo, Log: zap.NewNop()}

		_, token, err := svc.TryLock(context.Background(), "lock:a", time.Minute)
		require.NoError(t, err)

		err = svc.Unlock(context.Background(), "lock:a", "someone-elses-token")
		require.Error(t, err)
		assert.Contains(t, repo.store, "lock:a")

		err = svc.Unlock(context.Background(), "lock:a", token)
		require.NoError(t, err)
		assert.NotContains(t, repo.store, "lock:a")
	})

	t.Run("Unlock After Expiry Is A No-Op", func(t *testing.T) {
		svc := &lockService{redisRepo: newFakeRedisRepository(), Log: zap.NewNop()}

		err := svc.Unlock(context.Background(), "lock:gone", "whatever")
		require.NoError(t, err)
	})

	t.Run("Refresh Requires Ownership", func(t *testing.T) {
		svc := &lockService{redisRepo: newFakeRedisRepository(), Log: zap.NewNop()}

		_, token, err := svc.TryLock(context.Background(), "lock:a", time.Minute)
		require.NoError(t, err)

		require.Error(t, svc.Refresh(context.Background(), "lock:a", "stolen", time.Minute))
		require.NoError(t, svc.Refresh(context.Background(), "lock:a", token, time.Minute))
	})
}
