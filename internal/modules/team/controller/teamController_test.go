package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"league/internal/models"
	"league/internal/modules/team"
	"league/internal/modules/team/controller"
	teamRp "league/internal/modules/team/repo"
	teamDb "league/internal/modules/team/repo/database"
	"league/internal/modules/team/usecase"
	"league/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRouter(t *testing.T) (*gorm.DB, chi.Router) {
	t.Helper()
	db := testutil.NewDB(t)
	mediaUC, _ := testutil.NewMedia(t)
	repo := teamRp.NewRepo(teamDb.NewTeamDatabase(db, testutil.Logger()), nil)
	c := controller.NewTeamController(usecase.NewTeamUseCase(repo, mediaUC, testutil.Logger()), testutil.Logger(), testutil.StorageConfig())

	r := chi.NewRouter()
	r.Route("/teams", func(r chi.Router) {
		r.Post("/", c.CreateTeam)
		r.Get("/", c.GetTeams)
		r.Get("/count", c.CountTeams)
		r.Get("/{id}", c.GetTeam)
		r.Patch("/{id}", c.UpdateTeam)
		r.Delete("/{id}", c.DeleteTeam)
	})
	return db, r
}

func TestCreateTeam_WithImage(t *testing.T) {
	_, r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPost, "/teams",
		map[string]string{"name": "Reds", "city": "Liverpool"},
		testutil.File{Field: "imagen", Name: "crest.png", Content: testutil.PNG(t)}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env struct {
		Data team.TeamResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Data.Image)
	assert.Contains(t, *env.Data.Image, "/uploads/")
}

func TestCreateTeam_UnknownSeries(t *testing.T) {
	_, r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, testutil.MultipartRequest(t, http.MethodPost, "/teams",
		map[string]string{"name": "Reds", "seriesId": "99"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTeam_ReportsDetachedPlayers(t *testing.T) {
	db, r := newRouter(t)

	tm := models.Team{Name: "Reds"}
	require.NoError(t, db.Create(&tm).Error)
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Player{Name: "P", JerseyNumber: "1", Position: models.PositionBench, TeamID: &tm.ID}).Error)
	}

	target := "/teams/" + strconv.FormatUint(uint64(tm.ID), 10)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var env struct {
		Data team.DeleteTeamResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, int64(2), env.Data.DetachedPlayers)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetTeam_NotFound(t *testing.T) {
	_, r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams/999999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
