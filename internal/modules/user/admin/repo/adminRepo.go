package repo

import (
	"league/internal/models"
	"league/internal/modules/user/admin"
)

type AdminDb interface {
	GetUsers() ([]*models.User, error)
	GetUserByID(userID uint) (*models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(userID uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(userID uint) error
	EmailTaken(email string, excludeID uint) (bool, error)
}

type UserCache interface {
	GetUsers() (users []*models.User, gen int64, found bool)
	SaveUsers(gen int64, users []*models.User)
	Invalidate()
}

type repo struct {
	db AdminDb
	ch UserCache
}

func NewRepo(db AdminDb, ch UserCache) admin.Repo {
	return &repo{db: db, ch: ch}
}

func (r *repo) invalidate() {
	if r.ch != nil {
		r.ch.Invalidate()
	}
}

func (r *repo) GetUsers() ([]*models.User, error) {
	if r.ch == nil {
		return r.db.GetUsers()
	}
	cached, gen, ok := r.ch.GetUsers()
	if ok {
		return cached, nil
	}
	users, err := r.db.GetUsers()
	if err == nil {
		r.ch.SaveUsers(gen, users)
	}
	return users, err
}

func (r *repo) GetUserByID(userID uint) (*models.User, error) {
	return r.db.GetUserByID(userID)
}

func (r *repo) CreateUser(u *models.User) error {
	defer r.invalidate()
	return r.db.CreateUser(u)
}

func (r *repo) UpdateUser(userID uint, updates map[string]interface{}) (*models.User, error) {
	defer r.invalidate()
	return r.db.UpdateUser(userID, updates)
}

func (r *repo) DeleteUser(userID uint) error {
	defer r.invalidate()
	return r.db.DeleteUser(userID)
}

func (r *repo) EmailTaken(email string, excludeID uint) (bool, error) {
	return r.db.EmailTaken(email, excludeID)
}
