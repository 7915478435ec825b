package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencydesk/agencydesk/pkg/cache"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
	assert.False(t, CheckPassword("", "hunter2hunter2"))
}

func TestGenerateToken(t *testing.T) {
	a, err := GenerateToken()
	require.NoError(t, err)
	b, err := GenerateToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestHashToken_Deterministic(t *testing.T) {
	token := "abc123"
	assert.Equal(t, HashToken(token), HashToken(token))
	assert.NotEqual(t, HashToken(token), HashToken("abc124"))
	assert.Len(t, HashToken(token), 64)
}

func TestJWTRoundTrip(t *testing.T) {
	tokens := NewManager("test-secret", 24)

	token, err := tokens.Generate(42, "dana@example.com", "employee")
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "dana@example.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := NewManager("right-secret", 24).Generate(42, "dana@example.com", "employee")
	require.NoError(t, err)

	_, err = NewManager("wrong-secret", 24).Validate(token)
	require.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	tokens := NewManager("test-secret", -1)

	token, err := tokens.Generate(42, "dana@example.com", "employee")
	require.NoError(t, err)

	_, err = tokens.Validate(token)
	require.Error(t, err)
}

func setupBlacklist(t *testing.T) *TokenBlacklist {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTokenBlacklist(cache.NewClientFromRedis(redisClient))
}

func TestTokenBlacklist(t *testing.T) {
	blacklist := setupBlacklist(t)
	ctx := context.Background()

	token, err := NewManager("test-secret", 24).Generate(42, "dana@example.com", "employee")
	require.NoError(t, err)

	revoked, err := blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	revoked, err = blacklist.IsBlacklisted(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	blacklist := setupBlacklist(t)
	ctx := context.Background()
	tokens := NewManager("test-secret", 24)

	token, err := tokens.Generate(42, "dana@example.com", "employee")
	require.NoError(t, err)

	claims, err := tokens.ValidateWithBlacklist(ctx, token, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = tokens.ValidateWithBlacklist(ctx, token, blacklist)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")

	// A nil blacklist skips the revocation check.
	claims, err = tokens.ValidateWithBlacklist(ctx, token, nil)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
}
