package TaskService

import (
	"log/slog"
	"time"

	"league/internal/models"
	"league/internal/modules/media"

	"gorm.io/gorm"
)

// TaskService - фоновые задачи, запускаемые по cron.
type TaskService struct {
	db          *gorm.DB
	media       media.UseCase
	gracePeriod time.Duration
	log         *slog.Logger
	now         func() time.Time
}

func NewTaskService(db *gorm.DB, mediaUC media.UseCase, gracePeriod time.Duration, log *slog.Logger) *TaskService {
	return &TaskService{
		db:          db,
		media:       mediaUC,
		gracePeriod: gracePeriod,
		log:         log,
		now:         time.Now,
	}
}

// referencedImages собирает пути изображений из всех таблиц.
func (t *TaskService) referencedImages() (map[string]struct{}, error) {
	referenced := make(map[string]struct{})
	for _, model := range []interface{}{&models.Player{}, &models.Team{}, &models.Series{}, &models.User{}} {
		var paths []string
		if err := t.db.Model(model).Where("image IS NOT NULL").Pluck("image", &paths).Error; err != nil {
			return nil, err
		}
		for _, p := range paths {
			referenced[p] = struct{}{}
		}
	}
	return referenced, nil
}

// CleanOrphanImages удаляет файлы, на которые не ссылается ни одна запись.
// Свежие файлы не трогаем: запись могла еще не успеть сохраниться.
func (t *TaskService) CleanOrphanImages() int {
	op := "TaskService.CleanOrphanImages"
	log := t.log.With(slog.String("op", op))

	stored, err := t.media.ListStored()
	if err != nil {
		log.Error("failed to list stored images", "error", err)
		return 0
	}

	referenced, err := t.referencedImages()
	if err != nil {
		log.Error("failed to collect referenced images", "error", err)
		return 0
	}

	threshold := t.now().Add(-t.gracePeriod)
	deleted := 0
	for _, obj := range stored {
		if _, ok := referenced[obj.Path]; ok {
			continue
		}
		if obj.ModifiedAt.After(threshold) {
			continue
		}
		t.media.Delete(obj.Path)
		deleted++
	}

	log.Info("orphan images cleaned", slog.Int("stored", len(stored)), slog.Int("deleted", deleted))
	return deleted
}
