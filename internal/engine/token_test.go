package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Setup a test logger
	log = logrus.New()
	log.SetLevel(logrus.DebugLevel)
}

func TestTokenCacheFetchesOnce(t *testing.T) {
	calls := 0
	cache := NewTokenCache(func(ctx context.Context) (string, time.Time, error) {
		calls++
		return "tok-1", time.Now().Add(time.Hour), nil
	})

	for i := 0; i < 3; i++ {
		token, err := cache.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
	}
	assert.Equal(t, 1, calls)
}

func TestTokenCacheRefreshesExpired(t *testing.T) {
	now := time.Now()
	calls := 0
	cache := NewTokenCache(func(ctx context.Context) (string, time.Time, error) {
		calls++
		return "tok-" + string(rune('0'+calls)), now.Add(30 * time.Minute), nil
	})
	cache.nowFunc = func() time.Time { return now }

	token, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// Past the expiry the next Get fetches a fresh token.
	now = now.Add(time.Hour)
	token, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, 2, calls)
}

func TestTokenCacheFetchError(t *testing.T) {
	fetchErr := errors.New("auth down")
	cache := NewTokenCache(func(ctx context.Context) (string, time.Time, error) {
		return "", time.Time{}, fetchErr
	})

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, fetchErr)
}
