package database

import (
	"errors"
	"log/slog"

	"league/internal/models"
	"league/internal/modules/series"

	"gorm.io/gorm"
)

// SeriesDatabase реализует интерфейс repo.SeriesDb
type SeriesDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewSeriesDatabase(db *gorm.DB, log *slog.Logger) *SeriesDatabase {
	return &SeriesDatabase{
		db:  db,
		log: log,
	}
}

func withTeams(db *gorm.DB) *gorm.DB {
	return db.Preload("Teams", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("teams.id ASC")
	})
}

func (r *SeriesDatabase) CreateSeries(s *models.Series) error {
	op := "SeriesDatabase.CreateSeries"
	log := r.log.With(slog.String("op", op), slog.String("name", s.Name))

	if err := r.db.Create(s).Error; err != nil {
		log.Error("failed to create series in DB", "error", err)
		return series.ErrSeriesInternal
	}
	log.Info("series created", slog.Uint64("seriesID", uint64(s.ID)))
	return nil
}

func (r *SeriesDatabase) GetAllSeries() ([]*models.Series, error) {
	var list []*models.Series
	if err := withTeams(r.db).Order("id ASC").Find(&list).Error; err != nil {
		r.log.Error("failed to get series", slog.String("op", "SeriesDatabase.GetAllSeries"), "error", err)
		return nil, series.ErrSeriesInternal
	}
	return list, nil
}

func (r *SeriesDatabase) GetLatestSeries(limit int) ([]*models.Series, error) {
	var list []*models.Series
	err := withTeams(r.db).Order("created_at DESC").Order("id DESC").Limit(limit).Find(&list).Error
	if err != nil {
		r.log.Error("failed to get latest series", slog.String("op", "SeriesDatabase.GetLatestSeries"), "error", err)
		return nil, series.ErrSeriesInternal
	}
	return list, nil
}

func (r *SeriesDatabase) CountSeries() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Series{}).Count(&count).Error; err != nil {
		r.log.Error("failed to count series", slog.String("op", "SeriesDatabase.CountSeries"), "error", err)
		return 0, series.ErrSeriesInternal
	}
	return count, nil
}

func (r *SeriesDatabase) GetSeriesByID(seriesID uint) (*models.Series, error) {
	op := "SeriesDatabase.GetSeriesByID"
	log := r.log.With(slog.String("op", op), slog.Uint64("seriesID", uint64(seriesID)))

	var s models.Series
	if err := withTeams(r.db).First(&s, seriesID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("series not found")
			return nil, series.ErrSeriesNotFound
		}
		log.Error("failed to get series by ID", "error", err)
		return nil, series.ErrSeriesInternal
	}
	return &s, nil
}

func (r *SeriesDatabase) UpdateSeries(seriesID uint, updates map[string]interface{}) (*models.Series, error) {
	op := "SeriesDatabase.UpdateSeries"
	log := r.log.With(slog.String("op", op), slog.Uint64("seriesID", uint64(seriesID)))

	if len(updates) > 0 {
		result := r.db.Model(&models.Series{}).Where("id = ?", seriesID).Updates(updates)
		if result.Error != nil {
			log.Error("failed to update series", "error", result.Error)
			return nil, series.ErrSeriesInternal
		}
		if result.RowsAffected == 0 {
			log.Warn("no rows affected, series not found")
			return nil, series.ErrSeriesNotFound
		}
	}

	return r.GetSeriesByID(seriesID)
}

// DeleteSeries отвязывает команды серии и удаляет ее одной транзакцией.
func (r *SeriesDatabase) DeleteSeries(seriesID uint) (int64, error) {
	op := "SeriesDatabase.DeleteSeries"
	log := r.log.With(slog.String("op", op), slog.Uint64("seriesID", uint64(seriesID)))

	var detached int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Team{}).Where("series_id = ?", seriesID).Update("series_id", nil)
		if res.Error != nil {
			return res.Error
		}
		detached = res.RowsAffected

		res = tx.Delete(&models.Series{}, seriesID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return series.ErrSeriesNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, series.ErrSeriesNotFound) {
			log.Warn("series not found for deletion")
			return 0, err
		}
		log.Error("failed to delete series", "error", err)
		return 0, series.ErrSeriesInternal
	}

	log.Info("series deleted", slog.Int64("detachedTeams", detached))
	return detached, nil
}

func (r *SeriesDatabase) ExistsByNameAndSeason(name string, season *string) (bool, error) {
	query := r.db.Model(&models.Series{}).Where("name = ?", name)
	if season == nil {
		query = query.Where("season IS NULL")
	} else {
		query = query.Where("season = ?", *season)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.log.Error("failed to check series uniqueness", slog.String("op", "SeriesDatabase.ExistsByNameAndSeason"), "error", err)
		return false, series.ErrSeriesInternal
	}
	return count > 0, nil
}
