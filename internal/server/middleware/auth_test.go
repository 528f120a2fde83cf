package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	sessionID uuid.UUID
}

func (c *stubClaims) GetSessionID() uuid.UUID { return c.sessionID }

type stubValidator struct {
	sessionID uuid.UUID
	err       error
}

func (v *stubValidator) ValidateToken(tokenString string) (SessionIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &stubClaims{sessionID: v.sessionID}, nil
}

func protectedHandler(t *testing.T, wantSession uuid.UUID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := GetSessionID(r)
		require.NoError(t, err)
		assert.Equal(t, wantSession, sessionID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	sessionID := uuid.New()
	mw := AuthMiddleware(&stubValidator{sessionID: sessionID})

	req := httptest.NewRequest("POST", "/grid", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	mw(protectedHandler(t, sessionID)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	sessionID := uuid.New()
	mw := AuthMiddleware(&stubValidator{sessionID: sessionID})

	req := httptest.NewRequest("POST", "/grid", nil)
	req.Header.Set("Authorization", "bearer some-token")
	rec := httptest.NewRecorder()

	mw(protectedHandler(t, sessionID)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mw := AuthMiddleware(&stubValidator{sessionID: uuid.New()})

	req := httptest.NewRequest("POST", "/grid", nil)
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without credentials")
	})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	mw := AuthMiddleware(&stubValidator{sessionID: uuid.New()})

	for _, header := range []string{"some-token", "Basic abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("POST", "/grid", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("handler ran for header %q", header)
		})).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mw := AuthMiddleware(&stubValidator{err: fmt.Errorf("token expired")})

	req := httptest.NewRequest("POST", "/grid", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run with a bad token")
	})).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetSessionID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	_, err := GetSessionID(req)
	assert.Error(t, err)
}
