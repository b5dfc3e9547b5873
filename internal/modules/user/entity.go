package user

import (
	"time"

	"league/internal/models"
)

// BcryptCost - стоимость хеширования паролей.
const BcryptCost = 10

// UserResponse - пользователь без пароля.
type UserResponse struct {
	ID        uint        `json:"id"`
	Email     string      `json:"email" example:"jon.doe@gmail.com"`
	Name      *string     `json:"name"`
	Role      models.Role `json:"role" example:"user"`
	Image     *string     `json:"image"`
	ImageURL  *string     `json:"imageUrl,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewUserResponse(u *models.User, imageURL *string) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Image:     u.Image,
		ImageURL:  imageURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
