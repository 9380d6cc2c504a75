package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret",
		Issuer:     "krishi-connect",
		Expiration: time.Hour,
	})
	require.NoError(t, err)
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)
	farmerID := uuid.New()

	token, err := svc.GenerateToken(farmerID, "Raman", "Thrissur", []string{"farmer"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, farmerID, claims.FarmerID)
	assert.Equal(t, "Raman", claims.Name)
	assert.Equal(t, "Thrissur", claims.District)
	assert.True(t, claims.HasRole("farmer"))
	assert.False(t, claims.HasRole("admin"))
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService(t)
	token, err := svc.GenerateToken(uuid.New(), "", "", nil)
	require.NoError(t, err)

	other, err := NewJWTService(JWTConfig{Secret: "different", Issuer: "krishi-connect"})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	issuer, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "someone-else"})
	require.NoError(t, err)
	token, err := issuer.GenerateToken(uuid.New(), "", "", nil)
	require.NoError(t, err)

	svc, err := NewJWTService(JWTConfig{Secret: "s", Issuer: "krishi-connect"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(token)
	assert.ErrorContains(t, err, "invalid issuer")
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	svc := newTestService(t)
	farmerID := uuid.New()
	token, err := svc.GenerateToken(farmerID, "Raman", "Thrissur", nil)
	require.NoError(t, err)

	var gotClaims *Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(svc, []string{"/healthz"})(next)

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, farmerID, gotClaims.FarmerID)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/loans/x", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("skip path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
