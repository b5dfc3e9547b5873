package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"league/internal/modules/user/auth"
	"league/internal/modules/user/auth/controller"
	authRp "league/internal/modules/user/auth/repo"
	authDb "league/internal/modules/user/auth/repo/database"
	"league/internal/modules/user/auth/usecase"
	"league/internal/testutil"
	"league/pkg/lib/jwt"
	authmw "league/pkg/middleware/jwt"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authEnvelope struct {
	Status string            `json:"status"`
	Error  string            `json:"error"`
	Data   auth.AuthResponse `json:"data"`
}

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	db := testutil.NewDB(t)
	mediaUC, _ := testutil.NewMedia(t)
	tokens := jwt.NewManager("test-secret", time.Hour)
	repo := authRp.NewRepo(authDb.NewAuthDatabase(db, testutil.Logger()), nil)
	uc := usecase.NewAuthUseCase(testutil.Logger(), repo, tokens, mediaUC)
	c := controller.NewAuthController(testutil.Logger(), uc, testutil.StorageConfig())

	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", c.Login)
		r.Post("/register", c.Register)
		r.Group(func(r chi.Router) {
			r.Use(authmw.NewUserAuth(testutil.Logger(), tokens))
			r.Post("/profile", c.Profile)
			r.Post("/profile/image", c.ProfileImage)
		})
	})
	return r
}

func postJSON(r chi.Router, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) authEnvelope {
	t.Helper()
	var env authEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestRegisterAndLogin(t *testing.T) {
	r := newRouter(t)

	rec := postJSON(r, "/auth/register", `{"email":"ana@example.com","password":"secret123","name":"Ana"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decode(t, rec)
	assert.NotEmpty(t, registered.Data.AccessToken)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = postJSON(r, "/auth/login", `{"email":"ana@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, registered.Data.User.ID, decode(t, rec).Data.User.ID)
}

func TestRegister_Conflict(t *testing.T) {
	r := newRouter(t)

	rec := postJSON(r, "/auth/register", `{"email":"ana@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(r, "/auth/register", `{"email":"ana@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_Validation(t *testing.T) {
	r := newRouter(t)

	rec := postJSON(r, "/auth/register", `{"email":"not-an-email","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(r, "/auth/register", `{"email":"a@example.com","password":"secret123","role":"superuser"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newRouter(t)
	postJSON(r, "/auth/register", `{"email":"ana@example.com","password":"secret123"}`)

	rec := postJSON(r, "/auth/login", `{"email":"ana@example.com","password":"nope-nope"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, decode(t, rec).Data.AccessToken)
}

func TestProfile(t *testing.T) {
	r := newRouter(t)
	rec := postJSON(r, "/auth/register", `{"email":"ana@example.com","password":"secret123"}`)
	token := decode(t, rec).Data.AccessToken

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/profile", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "ana@example.com", env.Data.Email)
}

func TestProfileImage(t *testing.T) {
	r := newRouter(t)
	rec := postJSON(r, "/auth/register", `{"email":"ana@example.com","password":"secret123"}`)
	token := decode(t, rec).Data.AccessToken

	req := testutil.MultipartRequest(t, http.MethodPost, "/auth/profile/image", nil,
		testutil.File{Field: "imagen", Name: "me.png", Content: testutil.PNG(t)})
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "/uploads/")
}
