package repo

import (
	"league/internal/models"
	"league/internal/modules/team"
)

type TeamDb interface {
	CreateTeam(t *models.Team) error
	GetTeams() ([]*models.Team, error)
	GetTeamsWithSeries() ([]*models.Team, error)
	CountTeams() (int64, error)
	GetTeamByID(teamID uint) (*models.Team, error)
	UpdateTeam(teamID uint, updates map[string]interface{}) (*models.Team, error)
	DeleteTeam(teamID uint) (int64, error)
	SeriesExists(seriesID uint) (bool, error)
}

type TeamCache interface {
	GetTeams(withSeries bool) (teams []*models.Team, gen int64, found bool)
	SaveTeams(gen int64, withSeries bool, teams []*models.Team)
	GetCount() (count int64, gen int64, found bool)
	SaveCount(gen int64, count int64)
	Invalidate()
}

type repo struct {
	db TeamDb
	ch TeamCache
}

func NewRepo(db TeamDb, ch TeamCache) team.Repo {
	return &repo{db: db, ch: ch}
}

func (r *repo) invalidate() {
	if r.ch != nil {
		r.ch.Invalidate()
	}
}

func (r *repo) CreateTeam(t *models.Team) error {
	defer r.invalidate()
	return r.db.CreateTeam(t)
}

func (r *repo) GetTeams() ([]*models.Team, error) {
	return r.cachedList(false, r.db.GetTeams)
}

func (r *repo) GetTeamsWithSeries() ([]*models.Team, error) {
	return r.cachedList(true, r.db.GetTeamsWithSeries)
}

func (r *repo) cachedList(withSeries bool, load func() ([]*models.Team, error)) ([]*models.Team, error) {
	if r.ch == nil {
		return load()
	}
	cached, gen, ok := r.ch.GetTeams(withSeries)
	if ok {
		return cached, nil
	}
	teams, err := load()
	if err == nil {
		r.ch.SaveTeams(gen, withSeries, teams)
	}
	return teams, err
}

func (r *repo) CountTeams() (int64, error) {
	if r.ch == nil {
		return r.db.CountTeams()
	}
	cached, gen, ok := r.ch.GetCount()
	if ok {
		return cached, nil
	}
	count, err := r.db.CountTeams()
	if err == nil {
		r.ch.SaveCount(gen, count)
	}
	return count, err
}

func (r *repo) GetTeamByID(teamID uint) (*models.Team, error) {
	return r.db.GetTeamByID(teamID)
}

func (r *repo) UpdateTeam(teamID uint, updates map[string]interface{}) (*models.Team, error) {
	defer r.invalidate()
	return r.db.UpdateTeam(teamID, updates)
}

func (r *repo) DeleteTeam(teamID uint) (int64, error) {
	defer r.invalidate()
	return r.db.DeleteTeam(teamID)
}

func (r *repo) SeriesExists(seriesID uint) (bool, error) {
	return r.db.SeriesExists(seriesID)
}
