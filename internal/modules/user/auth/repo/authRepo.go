package repo

import "league/internal/models"

type AuthDb interface {
	CreateUser(u *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(userID uint) (*models.User, error)
	EmailExists(email string) (bool, error)
	UpdateUserImage(userID uint, path string) (*models.User, error)
}

// Invalidator сбрасывает кэш списков, в том числе /users.
type Invalidator interface {
	Invalidate()
}

// Repo реализует интерфейс auth.Repo.
type Repo struct {
	db AuthDb
	ch Invalidator
}

func NewRepo(db AuthDb, ch Invalidator) *Repo {
	return &Repo{
		db: db,
		ch: ch,
	}
}

func (r *Repo) invalidate() {
	if r.ch != nil {
		r.ch.Invalidate()
	}
}

func (r *Repo) CreateUser(u *models.User) error {
	defer r.invalidate()
	return r.db.CreateUser(u)
}

func (r *Repo) GetUserByEmail(email string) (*models.User, error) {
	return r.db.GetUserByEmail(email)
}

func (r *Repo) GetUserByID(userID uint) (*models.User, error) {
	return r.db.GetUserByID(userID)
}

func (r *Repo) EmailExists(email string) (bool, error) {
	return r.db.EmailExists(email)
}

func (r *Repo) UpdateUserImage(userID uint, path string) (*models.User, error) {
	defer r.invalidate()
	return r.db.UpdateUserImage(userID, path)
}
