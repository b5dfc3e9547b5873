package repo

import (
	"league/internal/models"
	"league/internal/modules/player"
)

type PlayerDb interface {
	CreatePlayer(p *models.Player) error
	CreatePlayers(players []*models.Player) (int, error)
	GetPlayers() ([]*models.Player, error)
	GetPlayersNewestFirst() ([]*models.Player, error)
	CountPlayers() (int64, error)
	GetPlayerByID(playerID uint) (*models.Player, error)
	UpdatePlayer(playerID uint, updates map[string]interface{}) (*models.Player, error)
	DeletePlayer(playerID uint) error
	TeamExists(teamID uint) (bool, error)
}

type PlayerCache interface {
	GetPlayers(newestFirst bool) (players []*models.Player, gen int64, found bool)
	SavePlayers(gen int64, newestFirst bool, players []*models.Player)
	GetCount() (count int64, gen int64, found bool)
	SaveCount(gen int64, count int64)
	Invalidate()
}

// repo реализует интерфейс player.Repo.
type repo struct {
	db PlayerDb
	ch PlayerCache // nil, если кэш отключен
}

func NewRepo(db PlayerDb, ch PlayerCache) player.Repo {
	return &repo{db: db, ch: ch}
}

func (r *repo) invalidate() {
	if r.ch != nil {
		r.ch.Invalidate()
	}
}

func (r *repo) CreatePlayer(p *models.Player) error {
	defer r.invalidate()
	return r.db.CreatePlayer(p)
}

func (r *repo) CreatePlayers(players []*models.Player) (int, error) {
	defer r.invalidate()
	return r.db.CreatePlayers(players)
}

func (r *repo) GetPlayers() ([]*models.Player, error) {
	return r.cachedList(false, r.db.GetPlayers)
}

func (r *repo) GetPlayersNewestFirst() ([]*models.Player, error) {
	return r.cachedList(true, r.db.GetPlayersNewestFirst)
}

func (r *repo) cachedList(newestFirst bool, load func() ([]*models.Player, error)) ([]*models.Player, error) {
	if r.ch == nil {
		return load()
	}
	cached, gen, ok := r.ch.GetPlayers(newestFirst)
	if ok {
		return cached, nil
	}
	players, err := load()
	if err == nil {
		r.ch.SavePlayers(gen, newestFirst, players)
	}
	return players, err
}

func (r *repo) CountPlayers() (int64, error) {
	if r.ch == nil {
		return r.db.CountPlayers()
	}
	cached, gen, ok := r.ch.GetCount()
	if ok {
		return cached, nil
	}
	count, err := r.db.CountPlayers()
	if err == nil {
		r.ch.SaveCount(gen, count)
	}
	return count, err
}

func (r *repo) GetPlayerByID(playerID uint) (*models.Player, error) {
	return r.db.GetPlayerByID(playerID)
}

func (r *repo) UpdatePlayer(playerID uint, updates map[string]interface{}) (*models.Player, error) {
	defer r.invalidate()
	return r.db.UpdatePlayer(playerID, updates)
}

func (r *repo) DeletePlayer(playerID uint) error {
	defer r.invalidate()
	return r.db.DeletePlayer(playerID)
}

func (r *repo) TeamExists(teamID uint) (bool, error) {
	return r.db.TeamExists(teamID)
}
