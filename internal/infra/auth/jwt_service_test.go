package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	tokenString, err := svc.GenerateAccessToken(userID, "test-secret", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := svc.ValidateToken(tokenString, "test-secret")
	require.NoError(t, err)
	assert.True(t, token.Valid)

	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, userID.String(), sub)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService(t)

	tokenString, err := svc.GenerateAccessToken(uuid.New(), "test-secret", time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := newTestService(t)

	tokenString, err := svc.GenerateAccessToken(uuid.New(), "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString, "test-secret")
	assert.Error(t, err)
}
