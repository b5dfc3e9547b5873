package repo_test

import (
	"testing"
	"time"

	"league/internal/models"
	playerRp "league/internal/modules/player/repo"
	playerCache "league/internal/modules/player/repo/cache"
	playerDb "league/internal/modules/player/repo/database"
	"league/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// writeDuringLoad выполняет запись после того, как список уже прочитан из БД,
// но до того, как он попал в кэш.
type writeDuringLoad struct {
	playerRp.PlayerDb
	write func()
}

func (d *writeDuringLoad) GetPlayers() ([]*models.Player, error) {
	players, err := d.PlayerDb.GetPlayers()
	if d.write != nil {
		write := d.write
		d.write = nil
		write()
	}
	return players, err
}

type fixture struct {
	db    *gorm.DB
	pdb   *writeDuringLoad
	cache *playerCache.PlayerCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testutil.NewDB(t)
	return fixture{
		db:    db,
		pdb:   &writeDuringLoad{PlayerDb: playerDb.NewPlayerDatabase(db, testutil.Logger())},
		cache: playerCache.NewPlayerCache(testutil.NewCache(t), testutil.Logger()),
	}
}

func TestGetPlayers_ServedFromCache(t *testing.T) {
	f := newFixture(t)
	r := playerRp.NewRepo(f.pdb, f.cache)

	tm := models.Team{Name: "Reds"}
	require.NoError(t, f.db.Create(&tm).Error)
	born := datatypes.Date(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC))
	height := 185.5
	require.NoError(t, r.CreatePlayer(&models.Player{
		Name:         "Ana",
		JerseyNumber: "9",
		Position:     models.PositionForward,
		BirthDate:    &born,
		Height:       &height,
		TeamID:       &tm.ID,
	}))

	_, err := r.GetPlayers()
	require.NoError(t, err)

	// мимо репозитория: кэш об этом не знает
	require.NoError(t, f.db.Exec("DELETE FROM players").Error)

	players, err := r.GetPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1)
	p := players[0]
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, models.PositionForward, p.Position)
	require.NotNil(t, p.BirthDate)
	assert.Equal(t, "1990-05-17", time.Time(*p.BirthDate).Format("2006-01-02"))
	require.NotNil(t, p.Height)
	assert.Equal(t, 185.5, *p.Height)
	require.NotNil(t, p.Team)
	assert.Equal(t, "Reds", p.Team.Name)
}

func TestGetPlayers_MissAfterWrite(t *testing.T) {
	f := newFixture(t)
	r := playerRp.NewRepo(f.pdb, f.cache)

	require.NoError(t, r.CreatePlayer(&models.Player{Name: "Ana", JerseyNumber: "9", Position: models.PositionForward}))
	players, err := r.GetPlayers()
	require.NoError(t, err)
	require.Len(t, players, 1)

	require.NoError(t, r.CreatePlayer(&models.Player{Name: "Bo", JerseyNumber: "4", Position: models.PositionDefender}))
	players, err = r.GetPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestGetPlayers_WriteDuringLoadNotCached(t *testing.T) {
	f := newFixture(t)
	r := playerRp.NewRepo(f.pdb, f.cache)

	require.NoError(t, r.CreatePlayer(&models.Player{Name: "Ana", JerseyNumber: "9", Position: models.PositionForward}))
	f.pdb.write = func() {
		require.NoError(t, r.CreatePlayer(&models.Player{Name: "Bo", JerseyNumber: "4", Position: models.PositionDefender}))
	}

	players, err := r.GetPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 1)

	players, err = r.GetPlayers()
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestCountPlayers_Cached(t *testing.T) {
	f := newFixture(t)
	r := playerRp.NewRepo(f.pdb, f.cache)

	require.NoError(t, r.CreatePlayer(&models.Player{Name: "Ana", JerseyNumber: "9", Position: models.PositionForward}))
	count, err := r.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, f.db.Exec("DELETE FROM players").Error)
	count, err = r.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = r.CreatePlayers([]*models.Player{
		{Name: "Bo", JerseyNumber: "4", Position: models.PositionDefender},
		{Name: "Cy", JerseyNumber: "1", Position: models.PositionGoalkeeper},
	})
	require.NoError(t, err)
	count, err = r.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
