// Package devtoken mints and revokes access tokens for local development.
// Production tokens come from the identity provider.
package devtoken

import (
	"context"
	"errors"
	"strconv"
	"time"

	"travelshare/internal/cache"
	"travelshare/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Token is a signed access token and its id.
type Token struct {
	Value     string
	JTI       string
	ExpiresAt time.Time
}

// Mint signs an HS256 token for userID accepted by the API's auth middleware.
func Mint(cfg *config.Config, userID uint, ttl time.Duration) (*Token, error) {
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	now := time.Now()
	jti := uuid.NewString()
	expiresAt := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": cfg.JWTIssuer,
		"aud": cfg.JWTAudience,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"jti": jti,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return nil, err
	}
	return &Token{Value: signed, JTI: jti, ExpiresAt: expiresAt}, nil
}

// Revoke blacklists jti until ttl elapses.
func Revoke(ctx context.Context, rdb *redis.Client, jti string, ttl time.Duration) error {
	if rdb == nil {
		return errors.New("redis client is nil")
	}
	if jti == "" {
		return errors.New("jti is required")
	}
	return rdb.Set(ctx, cache.BlacklistKey(jti), "1", ttl).Err()
}
