package database

import (
	"errors"
	"log/slog"
	"strings"

	"league/internal/models"
	"league/internal/modules/user"

	"gorm.io/gorm"
)

// AdminDatabase реализует интерфейс repo.AdminDb
type AdminDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewAdminDatabase(db *gorm.DB, log *slog.Logger) *AdminDatabase {
	return &AdminDatabase{
		db:  db,
		log: log,
	}
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique")
}

func (r *AdminDatabase) GetUsers() ([]*models.User, error) {
	var users []*models.User
	if err := r.db.Order("id ASC").Find(&users).Error; err != nil {
		r.log.Error("failed to get users", slog.String("op", "AdminDatabase.GetUsers"), "error", err)
		return nil, user.ErrInternal
	}
	return users, nil
}

func (r *AdminDatabase) GetUserByID(userID uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		r.log.Error("failed to get user", slog.String("op", "AdminDatabase.GetUserByID"), "error", err)
		return nil, user.ErrInternal
	}
	return &u, nil
}

func (r *AdminDatabase) CreateUser(u *models.User) error {
	op := "AdminDatabase.CreateUser"
	log := r.log.With(slog.String("op", op))

	if err := r.db.Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailExists
		}
		log.Error("failed to create user", "error", err)
		return user.ErrInternal
	}
	log.Info("user created", slog.Uint64("userID", uint64(u.ID)))
	return nil
}

func (r *AdminDatabase) UpdateUser(userID uint, updates map[string]interface{}) (*models.User, error) {
	op := "AdminDatabase.UpdateUser"
	log := r.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	if len(updates) > 0 {
		result := r.db.Model(&models.User{}).Where("id = ?", userID).Updates(updates)
		if result.Error != nil {
			if isUniqueViolation(result.Error) {
				return nil, user.ErrEmailExists
			}
			log.Error("failed to update user", "error", result.Error)
			return nil, user.ErrInternal
		}
		if result.RowsAffected == 0 {
			return nil, user.ErrUserNotFound
		}
	}
	return r.GetUserByID(userID)
}

func (r *AdminDatabase) DeleteUser(userID uint) error {
	op := "AdminDatabase.DeleteUser"
	log := r.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	result := r.db.Delete(&models.User{}, userID)
	if result.Error != nil {
		log.Error("failed to delete user", "error", result.Error)
		return user.ErrInternal
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}
	log.Info("user deleted")
	return nil
}

func (r *AdminDatabase) EmailTaken(email string, excludeID uint) (bool, error) {
	query := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.log.Error("failed to check email", slog.String("op", "AdminDatabase.EmailTaken"), "error", err)
		return false, user.ErrInternal
	}
	return count > 0, nil
}
