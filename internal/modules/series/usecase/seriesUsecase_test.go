package usecase_test

import (
	"testing"
	"time"

	"league/internal/models"
	"league/internal/modules/series"
	seriesRp "league/internal/modules/series/repo"
	seriesDb "league/internal/modules/series/repo/database"
	"league/internal/modules/series/usecase"
	"league/internal/testutil"
	"league/pkg/lib/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, *usecase.SeriesUseCase) {
	t.Helper()
	db := testutil.NewDB(t)
	mediaUC, _ := testutil.NewMedia(t)
	repo := seriesRp.NewRepo(seriesDb.NewSeriesDatabase(db, testutil.Logger()), nil)
	return db, usecase.NewSeriesUseCase(repo, mediaUC, testutil.Logger())
}

func season(s string) *string { return &s }

func TestCreateSeries_UniqueNameAndSeason(t *testing.T) {
	db, uc := setup(t)

	_, err := uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup", Season: season("2024")}, nil)
	require.NoError(t, err)

	_, err = uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup", Season: season("2024")}, nil)
	assert.ErrorIs(t, err, series.ErrSeriesExists)

	// другой сезон - другая серия
	_, err = uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup", Season: season("2025")}, nil)
	require.NoError(t, err)

	// без сезона тоже проверяется
	_, err = uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup"}, nil)
	require.NoError(t, err)
	_, err = uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup"}, nil)
	assert.ErrorIs(t, err, series.ErrSeriesExists)

	var count int64
	require.NoError(t, db.Model(&models.Series{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestCreateSeries_TeamsIsEmptyArray(t *testing.T) {
	_, uc := setup(t)

	created, err := uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, created.Teams)
	assert.Empty(t, created.Teams)
}

func TestGetLatestSeries(t *testing.T) {
	db, uc := setup(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"S1", "S2", "S3", "S4", "S5"} {
		s := models.Series{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		require.NoError(t, db.Create(&s).Error)
	}

	latest, err := uc.GetLatestSeries()
	require.NoError(t, err)
	require.Len(t, latest, series.LatestLimit)
	assert.Equal(t, "S5", latest[0].Name)
	assert.Equal(t, "S4", latest[1].Name)
	assert.Equal(t, "S3", latest[2].Name)
}

func TestUpdateSeries(t *testing.T) {
	_, uc := setup(t)

	created, err := uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup", Status: season("active")}, nil)
	require.NoError(t, err)

	updated, err := uc.UpdateSeries(created.ID, series.UpdateSeriesRequest{
		Country: patch.Of("Spain"),
		Status:  patch.Null[string](),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Cup", updated.Name)
	assert.Nil(t, updated.Status)
	require.NotNil(t, updated.Country)
	assert.Equal(t, "Spain", *updated.Country)

	_, err = uc.UpdateSeries(created.ID, series.UpdateSeriesRequest{Name: patch.Null[string]()}, nil)
	assert.ErrorIs(t, err, series.ErrSeriesNameRequired)

	_, err = uc.UpdateSeries(999999, series.UpdateSeriesRequest{Country: patch.Of("x")}, nil)
	assert.ErrorIs(t, err, series.ErrSeriesNotFound)
}

func TestDeleteSeries_DetachesTeams(t *testing.T) {
	db, uc := setup(t)

	created, err := uc.CreateSeries(series.CreateSeriesRequest{Name: "Cup"}, nil)
	require.NoError(t, err)
	for _, name := range []string{"A", "B"} {
		tm := models.Team{Name: name, SeriesID: &created.ID}
		require.NoError(t, db.Create(&tm).Error)
	}

	got, err := uc.GetSeries(created.ID)
	require.NoError(t, err)
	assert.Len(t, got.Teams, 2)

	result, err := uc.DeleteSeries(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.DetachedTeams)

	var orphaned int64
	require.NoError(t, db.Model(&models.Team{}).Where("series_id IS NULL").Count(&orphaned).Error)
	assert.Equal(t, int64(2), orphaned)

	_, err = uc.GetSeries(created.ID)
	assert.ErrorIs(t, err, series.ErrSeriesNotFound)
}
