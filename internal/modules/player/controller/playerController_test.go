package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"league/internal/modules/player"
	"league/internal/modules/player/controller"
	playerRp "league/internal/modules/player/repo"
	playerDb "league/internal/modules/player/repo/database"
	"league/internal/modules/player/usecase"
	"league/internal/testutil"
	resp "league/pkg/lib/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type playerEnvelope struct {
	Status string                `json:"status"`
	Error  string                `json:"error"`
	Code   string                `json:"code"`
	Fields []resp.FieldError     `json:"fields"`
	Data   player.PlayerResponse `json:"data"`
}

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	db := testutil.NewDB(t)
	mediaUC, _ := testutil.NewMedia(t)
	repo := playerRp.NewRepo(playerDb.NewPlayerDatabase(db, testutil.Logger()), nil)
	uc := usecase.NewPlayerUseCase(repo, mediaUC, testutil.Logger())
	c := controller.NewPlayerController(uc, testutil.Logger(), testutil.StorageConfig())

	r := chi.NewRouter()
	r.Route("/players", func(r chi.Router) {
		r.Post("/", c.CreatePlayer)
		r.Get("/", c.GetPlayers)
		r.Get("/count", c.CountPlayers)
		r.Post("/import-excel", c.ImportPlayers)
		r.Get("/{id}", c.GetPlayer)
		r.Patch("/{id}", c.UpdatePlayer)
		r.Delete("/{id}", c.DeletePlayer)
		r.Patch("/{id}/imagen", c.UpdatePlayerImage)
	})
	return r
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) playerEnvelope {
	t.Helper()
	var env playerEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func createPlayer(t *testing.T, r chi.Router, fields map[string]string) player.PlayerResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPost, "/players", fields))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec).Data
}

func TestCreatePlayer_MultipartCoercesNumbers(t *testing.T) {
	r := newRouter(t)

	created := createPlayer(t, r, map[string]string{
		"name":         "Ana",
		"jerseyNumber": "9",
		"position":     "Forward",
		"height":       "185",
		"weight":       "",
		"description":  "<b>fast</b> winger",
	})

	require.NotNil(t, created.Height)
	assert.Equal(t, 185.0, *created.Height)
	assert.Nil(t, created.Weight)
	require.NotNil(t, created.Description)
	assert.Equal(t, "fast winger", *created.Description)
}

func TestCreatePlayer_JSON(t *testing.T) {
	r := newRouter(t)

	body := `{"name":"Bo","jerseyNumber":"1","position":"Goalkeeper","height":"172.5"}`
	req := httptest.NewRequest(http.MethodPost, "/players", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Data.Height)
	assert.Equal(t, 172.5, *env.Data.Height)
}

func TestCreatePlayer_ValidationError(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPost, "/players", map[string]string{
		"name":         "Ana",
		"jerseyNumber": "9",
		"position":     "Striker",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, resp.StatusError, env.Status)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "position", env.Fields[0].Field)
}

func TestCreatePlayer_BadNumber(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPost, "/players", map[string]string{
		"name":         "Ana",
		"jerseyNumber": "9",
		"position":     "Forward",
		"height":       "tall",
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode(t, rec).Error, "height")
}

func TestGetPlayer_NotFound(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/999999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePlayer_EmptyValueClearsField(t *testing.T) {
	r := newRouter(t)
	created := createPlayer(t, r, map[string]string{
		"name": "Ana", "jerseyNumber": "9", "position": "Forward", "nationality": "Brazil",
	})

	rec := httptest.NewRecorder()
	target := "/players/" + strconv.FormatUint(uint64(created.ID), 10)
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPatch, target, map[string]string{
		"nationality": "",
		"height":      "180",
	}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	assert.Nil(t, env.Data.Nationality)
	assert.Equal(t, "Ana", env.Data.Name)
	require.NotNil(t, env.Data.Height)
	assert.Equal(t, 180.0, *env.Data.Height)
}

func TestUpdatePlayerImage_NoFile(t *testing.T) {
	r := newRouter(t)
	created := createPlayer(t, r, map[string]string{"name": "Ana", "jerseyNumber": "9", "position": "Forward"})

	rec := httptest.NewRecorder()
	target := "/players/" + strconv.FormatUint(uint64(created.ID), 10) + "/imagen"
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPatch, target, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, player.CodeNoImage, decode(t, rec).Code)
}

func TestUpdatePlayerImage_Success(t *testing.T) {
	r := newRouter(t)
	created := createPlayer(t, r, map[string]string{"name": "Ana", "jerseyNumber": "9", "position": "Forward"})

	rec := httptest.NewRecorder()
	target := "/players/" + strconv.FormatUint(uint64(created.ID), 10) + "/imagen"
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPatch, target, nil,
		testutil.File{Field: "imagen", Name: "a.png", Content: testutil.PNG(t)}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Data.Image)
	require.NotNil(t, env.Data.ImageURL)
}

func TestImportPlayers_NoFile(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPost, "/players/import-excel", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCountPlayers(t *testing.T) {
	r := newRouter(t)
	createPlayer(t, r, map[string]string{"name": "Ana", "jerseyNumber": "9", "position": "Forward"})
	createPlayer(t, r, map[string]string{"name": "Bo", "jerseyNumber": "1", "position": "Bench"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/count", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var env struct {
		Data resp.CountData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, int64(2), env.Data.Count)
}
