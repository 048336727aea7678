package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webapp-auth-backend/internal/initdata"
)

// Payload signed with "test-token"; auth_date=1700000000.
const signedPayload = "query_id=AAA&user=%7B%22id%22%3A42%2C%22first_name%22%3A%22A%22%7D&auth_date=1700000000&hash=1b6e6960147bf60e101db37cd1dbe57467411427410560884ff6c8b240fef662"

type fakeCache struct {
	entries map[string]*initdata.InitData
	gets    int
	sets    int
	fail    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*initdata.InitData{}}
}

func (f *fakeCache) Get(_ context.Context, digest string) (*initdata.InitData, error) {
	f.gets++
	if f.fail != nil {
		return nil, f.fail
	}
	return f.entries[digest], nil
}

func (f *fakeCache) Set(_ context.Context, digest string, data *initdata.InitData) error {
	f.sets++
	if f.fail != nil {
		return f.fail
	}
	f.entries[digest] = data
	return nil
}

func newTestService(t *testing.T, cache InitDataCache, ttl time.Duration) *AuthService {
	t.Helper()
	auth, err := initdata.New("test-token")
	require.NoError(t, err)
	svc := NewAuthService(auth, cache, ttl)
	// Pin the clock just after the payload's auth_date.
	svc.now = func() time.Time { return time.Unix(1700000100, 0) }
	return svc
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService(t, nil, time.Hour)

	data, err := svc.Authenticate(context.Background(), signedPayload)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.User.ID)
	assert.Equal(t, "1700000000", data.AuthDate)
}

func TestAuthenticateExpired(t *testing.T) {
	svc := newTestService(t, nil, time.Minute)

	_, err := svc.Authenticate(context.Background(), signedPayload)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestAuthenticateTTLDisabled(t *testing.T) {
	svc := newTestService(t, nil, 0)
	svc.now = func() time.Time { return time.Unix(1800000000, 0) }

	_, err := svc.Authenticate(context.Background(), signedPayload)
	assert.NoError(t, err)
}

func TestAuthenticateRejectsTampered(t *testing.T) {
	svc := newTestService(t, nil, time.Hour)

	_, err := svc.Authenticate(context.Background(), signedPayload+"x")
	assert.ErrorIs(t, err, initdata.ErrInvalidData)
}

func TestAuthenticatePopulatesCache(t *testing.T) {
	cache := newFakeCache()
	svc := newTestService(t, cache, time.Hour)
	ctx := context.Background()

	first, err := svc.Authenticate(ctx, signedPayload)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := svc.Authenticate(ctx, signedPayload)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, cache.gets)
	// The second call was served from the cache.
	assert.Equal(t, 1, cache.sets)
}

func TestAuthenticateCacheHitStillChecksFreshness(t *testing.T) {
	cache := newFakeCache()
	svc := newTestService(t, cache, time.Hour)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, signedPayload)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Unix(1700000000, 0).Add(2 * time.Hour) }
	_, err = svc.Authenticate(ctx, signedPayload)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestAuthenticateDegradesOnCacheFailure(t *testing.T) {
	cache := newFakeCache()
	cache.fail = errors.New("redis down")
	svc := newTestService(t, cache, time.Hour)

	data, err := svc.Authenticate(context.Background(), signedPayload)
	require.NoError(t, err)
	assert.Equal(t, int64(42), data.User.ID)
}

func TestValidatePassthrough(t *testing.T) {
	svc := newTestService(t, nil, time.Hour)

	ok, err := svc.Validate(signedPayload)
	require.NoError(t, err)
	assert.True(t, ok)
}
