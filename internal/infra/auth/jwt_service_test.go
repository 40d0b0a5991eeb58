package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token + "x")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "other-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}
