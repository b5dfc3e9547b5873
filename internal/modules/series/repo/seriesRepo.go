package repo

import (
	"league/internal/models"
	"league/internal/modules/series"
)

type SeriesDb interface {
	CreateSeries(s *models.Series) error
	GetAllSeries() ([]*models.Series, error)
	GetLatestSeries(limit int) ([]*models.Series, error)
	CountSeries() (int64, error)
	GetSeriesByID(seriesID uint) (*models.Series, error)
	UpdateSeries(seriesID uint, updates map[string]interface{}) (*models.Series, error)
	DeleteSeries(seriesID uint) (int64, error)
	ExistsByNameAndSeason(name string, season *string) (bool, error)
}

type SeriesCache interface {
	GetSeriesList(latest bool) (list []*models.Series, gen int64, found bool)
	SaveSeriesList(gen int64, latest bool, list []*models.Series)
	GetCount() (count int64, gen int64, found bool)
	SaveCount(gen int64, count int64)
	Invalidate()
}

type repo struct {
	db SeriesDb
	ch SeriesCache
}

func NewRepo(db SeriesDb, ch SeriesCache) series.Repo {
	return &repo{db: db, ch: ch}
}

func (r *repo) invalidate() {
	if r.ch != nil {
		r.ch.Invalidate()
	}
}

func (r *repo) CreateSeries(s *models.Series) error {
	defer r.invalidate()
	return r.db.CreateSeries(s)
}

func (r *repo) GetAllSeries() ([]*models.Series, error) {
	return r.cachedList(false, r.db.GetAllSeries)
}

// GetLatestSeries кэширует только выборку с лимитом по умолчанию.
func (r *repo) GetLatestSeries(limit int) ([]*models.Series, error) {
	load := func() ([]*models.Series, error) { return r.db.GetLatestSeries(limit) }
	if limit != series.LatestLimit {
		return load()
	}
	return r.cachedList(true, load)
}

func (r *repo) cachedList(latest bool, load func() ([]*models.Series, error)) ([]*models.Series, error) {
	if r.ch == nil {
		return load()
	}
	cached, gen, ok := r.ch.GetSeriesList(latest)
	if ok {
		return cached, nil
	}
	list, err := load()
	if err == nil {
		r.ch.SaveSeriesList(gen, latest, list)
	}
	return list, err
}

func (r *repo) CountSeries() (int64, error) {
	if r.ch == nil {
		return r.db.CountSeries()
	}
	cached, gen, ok := r.ch.GetCount()
	if ok {
		return cached, nil
	}
	count, err := r.db.CountSeries()
	if err == nil {
		r.ch.SaveCount(gen, count)
	}
	return count, err
}

func (r *repo) GetSeriesByID(seriesID uint) (*models.Series, error) {
	return r.db.GetSeriesByID(seriesID)
}

func (r *repo) UpdateSeries(seriesID uint, updates map[string]interface{}) (*models.Series, error) {
	defer r.invalidate()
	return r.db.UpdateSeries(seriesID, updates)
}

func (r *repo) DeleteSeries(seriesID uint) (int64, error) {
	defer r.invalidate()
	return r.db.DeleteSeries(seriesID)
}

func (r *repo) ExistsByNameAndSeason(name string, season *string) (bool, error) {
	return r.db.ExistsByNameAndSeason(name, season)
}
