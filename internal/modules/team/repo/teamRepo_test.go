package repo_test

import (
	"testing"
	"time"

	"league/internal/models"
	teamRp "league/internal/modules/team/repo"
	teamCache "league/internal/modules/team/repo/cache"
	teamDb "league/internal/modules/team/repo/database"
	"league/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestTeamLists_CachedSeparately(t *testing.T) {
	db := testutil.NewDB(t)
	r := teamRp.NewRepo(
		teamDb.NewTeamDatabase(db, testutil.Logger()),
		teamCache.NewTeamCache(testutil.NewCache(t), testutil.Logger()),
	)

	launch := datatypes.Date(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	s := models.Series{Name: "Cup", LaunchDate: &launch}
	require.NoError(t, db.Create(&s).Error)
	require.NoError(t, r.CreateTeam(&models.Team{Name: "Reds", SeriesID: &s.ID}))
	var tm models.Team
	require.NoError(t, db.First(&tm).Error)
	require.NoError(t, db.Create(&models.Player{Name: "Ana", JerseyNumber: "9", Position: models.PositionForward, TeamID: &tm.ID}).Error)

	teams, err := r.GetTeams()
	require.NoError(t, err)
	require.Len(t, teams, 1)
	withSeries, err := r.GetTeamsWithSeries()
	require.NoError(t, err)
	require.Len(t, withSeries, 1)

	require.NoError(t, db.Exec("DELETE FROM players").Error)
	require.NoError(t, db.Exec("DELETE FROM teams").Error)

	teams, err = r.GetTeams()
	require.NoError(t, err)
	require.Len(t, teams, 1)
	require.Len(t, teams[0].Players, 1)
	assert.Equal(t, models.PositionForward, teams[0].Players[0].Position)

	withSeries, err = r.GetTeamsWithSeries()
	require.NoError(t, err)
	require.Len(t, withSeries, 1)
	require.NotNil(t, withSeries[0].Series)
	require.NotNil(t, withSeries[0].Series.LaunchDate)
	assert.Equal(t, "2024-08-01", time.Time(*withSeries[0].Series.LaunchDate).Format("2006-01-02"))
	assert.Empty(t, withSeries[0].Players)

	require.NoError(t, r.CreateTeam(&models.Team{Name: "Blues"}))
	teams, err = r.GetTeams()
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Blues", teams[0].Name)

	count, err := r.CountTeams()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
