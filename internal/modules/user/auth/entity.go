package auth

import (
	"mime/multipart"
	"net/http"

	"league/internal/models"
	"league/internal/modules/user"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"jon.doe@gmail.com"`
	Password string `json:"password" validate:"required" example:"SuperPassword123"`
}

type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255" example:"jon.doe@gmail.com"`
	Password string  `json:"password" validate:"required,min=6,max=72" example:"SuperPassword123"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100" example:"Jon"`
	Role     *string `json:"role,omitempty" validate:"omitempty,role" example:"user"`
}

// AuthResponse - ответ login и register.
type AuthResponse struct {
	AccessToken string             `json:"access_token"`
	User        *user.UserResponse `json:"user"`
}

// --- Интерфейсы для модуля auth ---

type Controller interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	ProfileImage(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	Login(email, password string) (*AuthResponse, error)
	Register(req RegisterRequest) (*AuthResponse, error)
	Profile(userID uint) (*user.UserResponse, error)
	UpdateProfileImage(userID uint, image *multipart.FileHeader) (*user.UserResponse, error)
}

type Repo interface {
	CreateUser(u *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(userID uint) (*models.User, error)
	EmailExists(email string) (bool, error)
	UpdateUserImage(userID uint, path string) (*models.User, error)
}
