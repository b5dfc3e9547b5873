package admin

import (
	"net/http"

	"league/internal/models"
	"league/internal/modules/user"
	"league/pkg/lib/patch"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"jon.doe@gmail.com"`
	Name     string `json:"name" validate:"required,max=100" example:"Jon"`
	Password string `json:"password" validate:"required,min=6,max=72" example:"SuperPassword123"`
	Role     string `json:"role" validate:"required,role" example:"admin"`
}

type UpdateUserRequest struct {
	Email patch.Field[string] `json:"email" validate:"omitempty,email,max=255"`
	Name  patch.Field[string] `json:"name" validate:"omitempty,max=100"`
	Role  patch.Field[string] `json:"role" validate:"omitempty,role"`
}

type Controller interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	GetUser(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	GetUsers() ([]*user.UserResponse, error)
	GetUser(userID uint) (*user.UserResponse, error)
	CreateUser(req CreateUserRequest) (*user.UserResponse, error)
	UpdateUser(userID uint, req UpdateUserRequest) (*user.UserResponse, error)
	DeleteUser(userID uint) error
}

type Repo interface {
	GetUsers() ([]*models.User, error)
	GetUserByID(userID uint) (*models.User, error)
	CreateUser(u *models.User) error
	UpdateUser(userID uint, updates map[string]interface{}) (*models.User, error)
	DeleteUser(userID uint) error
	// EmailTaken ищет email у любого пользователя, кроме excludeID (0 - не исключать никого).
	EmailTaken(email string, excludeID uint) (bool, error)
}
