package auth

import (
	"testing"
	"time"

	"elegance/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	token, err := svc.Generate("user1712000000000", []string{"customer"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user1712000000000", claims.UserID)
	assert.Equal(t, []string{"customer"}, claims.Roles)
}

func TestJWTService_AdminRoles(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	token, err := svc.Generate("admin", []string{"admin"})
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.UserID)
	assert.Contains(t, claims.Roles, "admin")
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("secret-a"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret-b"))
	require.NoError(t, err)

	token, err := issuer.Generate("admin", []string{"admin"})
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testConfig("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate("not-a-token")
	assert.Error(t, err)
}
