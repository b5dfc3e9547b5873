package jwt_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"league/internal/models"
	"league/internal/testutil"
	"league/pkg/lib/jwt"
	authmw "league/pkg/middleware/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(t *testing.T, mw func(http.Handler) http.Handler) http.Handler {
	t.Helper()
	return mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := authmw.UserIDFromContext(r.Context())
		require.NoError(t, err)
		claims, ok := authmw.ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, uint(7), userID)
		assert.Equal(t, "ana@example.com", claims.Email)
		w.WriteHeader(http.StatusNoContent)
	}))
}

func call(h http.Handler, header string) int {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestUserAuth(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	h := protected(t, authmw.NewUserAuth(testutil.Logger(), tokens))

	token, err := tokens.GenerateAccessToken(7, "ana@example.com", string(models.RoleUser))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, call(h, "Bearer "+token))
	assert.Equal(t, http.StatusNoContent, call(h, "bearer "+token))
	assert.Equal(t, http.StatusUnauthorized, call(h, ""))
	assert.Equal(t, http.StatusUnauthorized, call(h, token))
	assert.Equal(t, http.StatusUnauthorized, call(h, "Bearer garbage"))

	foreign, err := jwt.NewManager("other-secret", time.Hour).GenerateAccessToken(7, "ana@example.com", "user")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(h, "Bearer "+foreign))
}

func TestUserAuth_Expired(t *testing.T) {
	tokens := jwt.NewManager("test-secret", -time.Minute)
	h := protected(t, authmw.NewUserAuth(testutil.Logger(), tokens))

	token, err := tokens.GenerateAccessToken(7, "ana@example.com", string(models.RoleUser))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(h, "Bearer "+token))
}

func TestAdminAuth(t *testing.T) {
	tokens := jwt.NewManager("test-secret", time.Hour)
	h := protected(t, authmw.NewAdminAuth(testutil.Logger(), tokens))

	userToken, err := tokens.GenerateAccessToken(7, "ana@example.com", string(models.RoleUser))
	require.NoError(t, err)
	adminToken, err := tokens.GenerateAccessToken(7, "ana@example.com", string(models.RoleAdmin))
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, call(h, "Bearer "+userToken))
	assert.Equal(t, http.StatusNoContent, call(h, "Bearer "+adminToken))
	assert.Equal(t, http.StatusUnauthorized, call(h, ""))
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, err := authmw.UserIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.ErrorIs(t, err, authmw.ErrNoClaims)
}
