package devtoken

import (
	"context"
	"testing"
	"time"

	"travelshare/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "dev-secret-that-is-long-enough-for-hs256",
		JWTIssuer:   "travelshare-identity",
		JWTAudience: "travelshare-client",
	}
}

func TestMint(t *testing.T) {
	cfg := testConfig()
	tok, err := Mint(cfg, 42, 10*time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, tok.JTI)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), tok.ExpiresAt, 2*time.Second)

	parsed, err := jwt.Parse(tok.Value, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithIssuer(cfg.JWTIssuer), jwt.WithAudience(cfg.JWTAudience))
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, tok.JTI, claims["jti"])
}

func TestMint_RequiresUser(t *testing.T) {
	_, err := Mint(testConfig(), 0, time.Hour)
	assert.Error(t, err)
}

func TestRevoke(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	require.NoError(t, Revoke(context.Background(), rdb, "abc", time.Hour))
	assert.True(t, mr.Exists("blacklist:abc"))
	assert.Equal(t, time.Hour, mr.TTL("blacklist:abc"))

	assert.Error(t, Revoke(context.Background(), nil, "abc", time.Hour))
	assert.Error(t, Revoke(context.Background(), rdb, "", time.Hour))
}
