package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	require.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "test-secret", Issuer: "taskboard"})
	require.NoError(t, err)

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, "42", claims.Subject)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	issued := time.Now().Add(-48 * time.Hour)
	issuer, err := NewJWTService(JWTConfig{
		Secret:   "test-secret",
		TokenTTL: time.Hour,
		Clock:    func() time.Time { return issued },
	})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1)
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "secret-a"})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1)
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{Secret: "secret-b"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "someone-else"})
	require.NoError(t, err)

	token, err := issuer.GenerateToken(1)
	require.NoError(t, err)

	verifier, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "taskboard"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}
