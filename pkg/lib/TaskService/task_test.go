package TaskService

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"league/internal/models"
	"league/internal/modules/media"
	"league/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanOrphanImages(t *testing.T) {
	db := testutil.NewDB(t)
	mediaUC, dir := testutil.NewMedia(t)

	save := func() string {
		path, err := mediaUC.SaveImage(testutil.FileHeader(t, "imagen", "a.png", testutil.PNG(t)))
		require.NoError(t, err)
		return path
	}

	playerImage := save()
	teamImage := save()
	orphan := save()

	require.NoError(t, db.Create(&models.Player{Name: "P", JerseyNumber: "1", Position: models.PositionBench, Image: &playerImage}).Error)
	require.NoError(t, db.Create(&models.Team{Name: "T", Image: &teamImage}).Error)

	ts := NewTaskService(db, mediaUC, time.Hour, testutil.Logger())

	// все файлы свежие, ничего не удаляем
	assert.Equal(t, 0, ts.CleanOrphanImages())

	ts.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.Equal(t, 1, ts.CleanOrphanImages())

	exists := func(rel string) bool {
		_, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(rel, media.UploadPrefix)))
		return err == nil
	}
	assert.True(t, exists(playerImage))
	assert.True(t, exists(teamImage))
	assert.False(t, exists(orphan))
}
