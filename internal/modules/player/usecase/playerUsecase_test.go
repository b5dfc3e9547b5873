package usecase_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"league/internal/models"
	"league/internal/modules/media"
	"league/internal/modules/player"
	playerRp "league/internal/modules/player/repo"
	playerDb "league/internal/modules/player/repo/database"
	"league/internal/modules/player/usecase"
	"league/internal/testutil"
	"league/pkg/lib/patch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	uc       *usecase.PlayerUseCase
	mediaDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	mediaUC, dir := testutil.NewMedia(t)
	repo := playerRp.NewRepo(playerDb.NewPlayerDatabase(db, testutil.Logger()), nil)
	return &fixture{
		db:       db,
		uc:       usecase.NewPlayerUseCase(repo, mediaUC, testutil.Logger()),
		mediaDir: dir,
	}
}

func strPtr(s string) *string { return &s }

func validCreateRequest() player.CreatePlayerRequest {
	height := 185.0
	return player.CreatePlayerRequest{
		Name:         "Lionel Test",
		JerseyNumber: "10",
		Position:     string(models.PositionForward),
		Height:       &height,
		Rarity:       strPtr("Legendary"),
	}
}

func TestCreatePlayer(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreatePlayer(validCreateRequest(), nil)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Lionel Test", created.Name)
	assert.Nil(t, created.Image)
	require.NotNil(t, created.Height)
	assert.Equal(t, 185.0, *created.Height)

	count, err := f.uc.CountPlayers()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreatePlayer_WithImage(t *testing.T) {
	f := newFixture(t)

	image := testutil.FileHeader(t, "imagen", "avatar.png", testutil.PNG(t))
	created, err := f.uc.CreatePlayer(validCreateRequest(), image)
	require.NoError(t, err)
	require.NotNil(t, created.Image)
	assert.True(t, strings.HasPrefix(*created.Image, media.UploadPrefix))
	assert.True(t, strings.HasSuffix(*created.Image, ".webp"))
	require.NotNil(t, created.ImageURL)
	assert.Equal(t, testutil.BaseURL+*created.Image, *created.ImageURL)

	_, err = os.Stat(filepath.Join(f.mediaDir, strings.TrimPrefix(*created.Image, media.UploadPrefix)))
	assert.NoError(t, err)
}

func TestCreatePlayer_UnknownTeam(t *testing.T) {
	f := newFixture(t)

	req := validCreateRequest()
	teamID := uint(42)
	req.TeamID = &teamID

	_, err := f.uc.CreatePlayer(req, nil)
	assert.ErrorIs(t, err, player.ErrTeamNotFound)

	count, err := f.uc.CountPlayers()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGetPlayer_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.GetPlayer(999999)
	assert.ErrorIs(t, err, player.ErrPlayerNotFound)

	_, err = f.uc.DeletePlayer(999999)
	assert.ErrorIs(t, err, player.ErrPlayerNotFound)
}

func TestGetPlayersWithDetails(t *testing.T) {
	f := newFixture(t)

	s := models.Series{Name: "Cup", Season: strPtr("2024")}
	require.NoError(t, f.db.Create(&s).Error)
	team := models.Team{Name: "Reds", SeriesID: &s.ID}
	require.NoError(t, f.db.Create(&team).Error)

	first := validCreateRequest()
	first.TeamID = &team.ID
	_, err := f.uc.CreatePlayer(first, nil)
	require.NoError(t, err)

	second := validCreateRequest()
	second.Name = "Second"
	_, err = f.uc.CreatePlayer(second, nil)
	require.NoError(t, err)

	players, err := f.uc.GetPlayersWithDetails()
	require.NoError(t, err)
	require.Len(t, players, 2)

	// новые первыми
	assert.Equal(t, "Second", players[0].Name)
	assert.Nil(t, players[0].Team)

	require.NotNil(t, players[1].Team)
	assert.Equal(t, "Reds", players[1].Team.Name)
	require.NotNil(t, players[1].Team.Series)
	assert.Equal(t, "Cup", players[1].Team.Series.Name)
}

func TestUpdatePlayer_Partial(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreatePlayer(validCreateRequest(), nil)
	require.NoError(t, err)

	req := player.UpdatePlayerRequest{
		Height: patch.Of(190.5),
		Rarity: patch.Null[string](),
	}
	updated, err := f.uc.UpdatePlayer(created.ID, req, nil)
	require.NoError(t, err)

	assert.Equal(t, "Lionel Test", updated.Name)
	assert.Equal(t, "10", updated.JerseyNumber)
	require.NotNil(t, updated.Height)
	assert.Equal(t, 190.5, *updated.Height)
	assert.Nil(t, updated.Rarity)
}

func TestUpdatePlayer_RequiredFieldCannotBeCleared(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreatePlayer(validCreateRequest(), nil)
	require.NoError(t, err)

	_, err = f.uc.UpdatePlayer(created.ID, player.UpdatePlayerRequest{Name: patch.Null[string]()}, nil)
	assert.ErrorIs(t, err, player.ErrRequiredFieldEmpty)
}

func TestUpdatePlayerImage(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreatePlayer(validCreateRequest(), testutil.FileHeader(t, "imagen", "a.png", testutil.PNG(t)))
	require.NoError(t, err)
	oldFile := filepath.Join(f.mediaDir, strings.TrimPrefix(*created.Image, media.UploadPrefix))

	_, err = f.uc.UpdatePlayerImage(created.ID, nil)
	assert.ErrorIs(t, err, media.ErrNoImage)

	updated, err := f.uc.UpdatePlayerImage(created.ID, testutil.FileHeader(t, "imagen", "b.png", testutil.PNG(t)))
	require.NoError(t, err)
	require.NotNil(t, updated.Image)
	assert.NotEqual(t, *created.Image, *updated.Image)

	_, err = os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err), "old image must be removed")
}

func TestUpdatePlayerImage_InvalidFile(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreatePlayer(validCreateRequest(), nil)
	require.NoError(t, err)

	_, err = f.uc.UpdatePlayerImage(created.ID, testutil.FileHeader(t, "imagen", "notes.txt", []byte("plain text")))
	assert.ErrorIs(t, err, media.ErrInvalidImage)
}

func TestDeletePlayer(t *testing.T) {
	f := newFixture(t)

	created, err := f.uc.CreatePlayer(validCreateRequest(), testutil.FileHeader(t, "imagen", "a.png", testutil.PNG(t)))
	require.NoError(t, err)

	deleted, err := f.uc.DeletePlayer(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = f.uc.GetPlayer(created.ID)
	assert.ErrorIs(t, err, player.ErrPlayerNotFound)

	entries, err := os.ReadDir(f.mediaDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
