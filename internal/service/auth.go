package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"webapp-auth-backend/internal/common/logger"
	"webapp-auth-backend/internal/initdata"
)

// ErrExpired is returned when the payload's auth_date falls outside the
// configured freshness window.
var ErrExpired = errors.New("init data is expired")

// InitDataCache memoizes verified payloads by raw-payload digest. Get
// returns (nil, nil) on miss.
type InitDataCache interface {
	Get(ctx context.Context, digest string) (*initdata.InitData, error)
	Set(ctx context.Context, digest string, data *initdata.InitData) error
}

// AuthService wraps the signature core with the auth_date freshness
// window and an optional verification cache.
type AuthService struct {
	auth  *initdata.Authenticator
	cache InitDataCache
	ttl   time.Duration
	now   func() time.Time
}

// NewAuthService builds the service. cache may be nil to disable
// memoization; ttl of 0 disables the freshness check.
func NewAuthService(auth *initdata.Authenticator, cache InitDataCache, ttl time.Duration) *AuthService {
	return &AuthService{auth: auth, cache: cache, ttl: ttl, now: time.Now}
}

// Authenticate verifies raw init data and returns the typed payload.
// Cache failures degrade to a full validation, never to acceptance.
// The freshness window is re-checked on cache hits, so a cached entry
// cannot outlive its auth_date.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (initdata.InitData, error) {
	digest := payloadDigest(raw)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, digest)
		if err != nil {
			logger.Warn().Err(err).Msg("init data cache read failed")
		} else if cached != nil {
			if err := s.checkFreshness(*cached); err != nil {
				return initdata.InitData{}, err
			}
			return *cached, nil
		}
	}

	data, err := s.auth.GetInitData(raw)
	if err != nil {
		return initdata.InitData{}, err
	}
	if err := s.checkFreshness(data); err != nil {
		return initdata.InitData{}, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, digest, &data); err != nil {
			logger.Warn().Err(err).Msg("init data cache write failed")
		}
	}
	return data, nil
}

// Validate reports whether raw init data carries a valid signature,
// with the same boolean-vs-error split as the core.
func (s *AuthService) Validate(raw string) (bool, error) {
	return s.auth.Validate(raw)
}

func (s *AuthService) checkFreshness(data initdata.InitData) error {
	if s.ttl == 0 {
		return nil
	}
	issuedAt, err := data.AuthDateTime()
	if err != nil {
		return err
	}
	if s.now().Sub(issuedAt) > s.ttl {
		return fmt.Errorf("%w: issued at %s", ErrExpired, issuedAt.UTC().Format(time.RFC3339))
	}
	return nil
}

// payloadDigest keys the cache. The raw payload itself never goes into
// Redis keys.
func payloadDigest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
