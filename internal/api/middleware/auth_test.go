package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisrr11/turnos-service/internal/domain"
	"github.com/alexisrr11/turnos-service/pkg/authtoken"
)

type fakeVerifier struct {
	claims *authtoken.Claims
	err    error
}

func (f *fakeVerifier) Verify(_ string) (*authtoken.Claims, error) {
	return f.claims, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func callAuth(t *testing.T, verifier TokenVerifier, header string) (*httptest.ResponseRecorder, domain.Identity, bool) {
	t.Helper()

	var (
		identity domain.Identity
		found    bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, found = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	Auth(verifier, nopLogger{})(next).ServeHTTP(rec, req)
	return rec, identity, found
}

func TestAuth_ValidToken(t *testing.T) {
	verifier := &fakeVerifier{claims: &authtoken.Claims{UserID: 1, BusinessID: 2, Role: "admin"}}

	rec, identity, found := callAuth(t, verifier, "Bearer some-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, found)
	assert.Equal(t, int64(1), identity.UserID)
	assert.Equal(t, int64(2), identity.BusinessID)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, _, found := callAuth(t, &fakeVerifier{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuth_WrongScheme(t *testing.T) {
	rec, _, found := callAuth(t, &fakeVerifier{}, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuth_RejectedToken(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("signature is invalid")}

	rec, _, found := callAuth(t, verifier, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}

func TestAuth_UnknownRole(t *testing.T) {
	// токен с неизвестной ролью не должен порождать Identity
	verifier := &fakeVerifier{claims: &authtoken.Claims{UserID: 1, BusinessID: 2, Role: "superuser"}}

	rec, _, found := callAuth(t, verifier, "Bearer some-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, found)
}
