package database

import (
	"errors"
	"log/slog"
	"strings"

	"league/internal/models"
	"league/internal/modules/user"

	"gorm.io/gorm"
)

type AuthDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewAuthDatabase(db *gorm.DB, log *slog.Logger) *AuthDatabase {
	return &AuthDatabase{
		db:  db,
		log: log,
	}
}

func (r *AuthDatabase) CreateUser(u *models.User) error {
	op := "AuthDatabase.CreateUser"
	log := r.log.With(slog.String("op", op))

	if err := r.db.Create(u).Error; err != nil {
		// гонка между проверкой и вставкой: ловим уникальный индекс
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return user.ErrEmailExists
		}
		log.Error("failed to create user", "error", err)
		return user.ErrInternal
	}
	log.Info("user created", slog.Uint64("userID", uint64(u.ID)))
	return nil
}

func (r *AuthDatabase) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.log.Error("failed to get user by email", slog.String("op", "AuthDatabase.GetUserByEmail"), "error", err)
		return nil, user.ErrInternal
	}
	return &u, nil
}

func (r *AuthDatabase) GetUserByID(userID uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.log.Error("failed to get user by ID", slog.String("op", "AuthDatabase.GetUserByID"), "error", err)
		return nil, user.ErrInternal
	}
	return &u, nil
}

func (r *AuthDatabase) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		r.log.Error("failed to check email", slog.String("op", "AuthDatabase.EmailExists"), "error", err)
		return false, user.ErrInternal
	}
	return count > 0, nil
}

func (r *AuthDatabase) UpdateUserImage(userID uint, path string) (*models.User, error) {
	op := "AuthDatabase.UpdateUserImage"
	log := r.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	result := r.db.Model(&models.User{}).Where("id = ?", userID).Update("image", path)
	if result.Error != nil {
		log.Error("failed to update user image", "error", result.Error)
		return nil, user.ErrInternal
	}
	if result.RowsAffected == 0 {
		return nil, user.ErrUserNotFound
	}
	return r.GetUserByID(userID)
}
