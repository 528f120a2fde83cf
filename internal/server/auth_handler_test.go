package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T, password string) *AuthHandler {
	auth := testAuthConfig()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	auth.AdminHash = hash

	return NewAuthHandler(auth, NewJWTService(auth))
}

func TestLogin_Success(t *testing.T) {
	h := newTestAuthHandler(t, "open sesame")

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"password":"open sesame"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.ExpiresAt.IsZero())

	// Issued token must validate against the same service.
	claims, err := NewJWTService(h.auth).ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", claims.SessionID.String())
}

func TestLogin_WrongPassword(t *testing.T) {
	h := newTestAuthHandler(t, "open sesame")

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"password":"guess"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MissingPassword(t *testing.T) {
	h := newTestAuthHandler(t, "open sesame")

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_BadBody(t *testing.T) {
	h := newTestAuthHandler(t, "open sesame")

	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_SessionsAreUnique(t *testing.T) {
	h := newTestAuthHandler(t, "open sesame")
	svc := NewJWTService(h.auth)

	sessions := map[string]bool{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"password":"open sesame"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		claims, err := svc.ValidateToken(resp.Token)
		require.NoError(t, err)
		sessions[claims.SessionID.String()] = true
	}
	assert.Len(t, sessions, 3)
}
