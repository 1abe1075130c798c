package auth

import (
	"testing"

	"homely/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, refreshToken, err := svc.GenerateTokens("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	token, err := svc.ValidateToken(accessToken, "access-secret")
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "access", claims["type"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	accessToken, _, err := svc.GenerateTokens("user-1")
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken, "not-the-secret")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_RefreshUsesOwnSecret(t *testing.T) {
	svc := newTestJWTService(t)

	_, refreshToken, err := svc.GenerateTokens("user-1")
	require.NoError(t, err)

	// Refresh tokens do not validate against the access secret.
	_, err = svc.ValidateToken(refreshToken, "access-secret")
	require.Error(t, err)

	token, err := svc.ValidateToken(refreshToken, "refresh-secret")
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "refresh", claims["type"])
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not-a-jwt", "access-secret")
	require.Error(t, err)
}
