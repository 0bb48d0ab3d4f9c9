package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-that-is-long-enough",
		AccessTokenExpiration: expiration,
		Issuer:                "spacatalog-test",
	})
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := newTestService(15 * time.Minute)
	userID := uuid.New()

	generated, err := service.GenerateToken(GenerateTokenInput{
		UserID:   userID,
		Username: "editor",
		Role:     "catalog_admin",
	})
	require.NoError(t, err)
	require.NotEmpty(t, generated.Token)
	assert.Equal(t, "Bearer", generated.TokenType)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), generated.ExpiresAt, 5*time.Second)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := newTestService(15 * time.Minute)
	userID := uuid.New()

	t.Run("valid token round-trips claims", func(t *testing.T) {
		generated, err := service.GenerateToken(GenerateTokenInput{
			UserID:   userID,
			Username: "editor",
			Role:     "catalog_admin",
		})
		require.NoError(t, err)

		claims, err := service.ValidateToken(generated.Token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "editor", claims.Username)
		assert.Equal(t, "catalog_admin", claims.Role)
		assert.Equal(t, "spacatalog-test", claims.Issuer)

		parsed, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret",
			AccessTokenExpiration: 15 * time.Minute,
			Issuer:                "spacatalog-test",
		})
		generated, err := other.GenerateToken(GenerateTokenInput{UserID: userID, Username: "editor"})
		require.NoError(t, err)

		_, err = service.ValidateToken(generated.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := newTestService(-1 * time.Minute)
		generated, err := expired.GenerateToken(GenerateTokenInput{UserID: userID, Username: "editor"})
		require.NoError(t, err)

		_, err = service.ValidateToken(generated.Token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
