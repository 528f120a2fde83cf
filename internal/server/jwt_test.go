package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/lifegrid/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:  "unit-test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: 10,
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	sessionID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(sessionID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.GetSessionID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc := NewJWTService(testAuthConfig())

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService(testAuthConfig())

	token, _, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService(testAuthConfig())
	token, _, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.AuthConfig{JWTSecret: "different-secret", TokenTTL: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	svc := NewJWTService(testAuthConfig())

	// Unsigned token with alg "none"
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{SessionID: uuid.New()})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenTTL = -time.Hour
	svc := NewJWTService(cfg)

	token, _, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
