package usecase

import (
	"log/slog"

	"league/internal/models"
	"league/internal/modules/media"
	"league/internal/modules/user"
	"league/internal/modules/user/admin"

	"golang.org/x/crypto/bcrypt"
)

// AdminUseCase реализует интерфейс admin.UseCase.
type AdminUseCase struct {
	repo  admin.Repo
	media media.UseCase
	log   *slog.Logger
}

func NewAdminUseCase(repo admin.Repo, mediaUC media.UseCase, log *slog.Logger) *AdminUseCase {
	return &AdminUseCase{
		repo:  repo,
		media: mediaUC,
		log:   log,
	}
}

func (uc *AdminUseCase) toUserResponse(u *models.User) *user.UserResponse {
	return user.NewUserResponse(u, uc.media.PublicURL(u.Image))
}

func (uc *AdminUseCase) GetUsers() ([]*user.UserResponse, error) {
	users, err := uc.repo.GetUsers()
	if err != nil {
		return nil, err
	}
	responses := make([]*user.UserResponse, len(users))
	for i, u := range users {
		responses[i] = uc.toUserResponse(u)
	}
	return responses, nil
}

func (uc *AdminUseCase) GetUser(userID uint) (*user.UserResponse, error) {
	u, err := uc.repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return uc.toUserResponse(u), nil
}

func (uc *AdminUseCase) CreateUser(req admin.CreateUserRequest) (*user.UserResponse, error) {
	op := "AdminUseCase.CreateUser"
	log := uc.log.With(slog.String("op", op))

	taken, err := uc.repo.EmailTaken(req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), user.BcryptCost)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, user.ErrInternal
	}

	name := req.Name
	u := &models.User{
		Email:    req.Email,
		Name:     &name,
		Password: string(hashedPassword),
		Role:     models.Role(req.Role),
	}
	if err := uc.repo.CreateUser(u); err != nil {
		return nil, err
	}

	log.Info("user created by admin", slog.Uint64("userID", uint64(u.ID)), slog.String("role", req.Role))
	return uc.toUserResponse(u), nil
}

func (uc *AdminUseCase) UpdateUser(userID uint, req admin.UpdateUserRequest) (*user.UserResponse, error) {
	op := "AdminUseCase.UpdateUser"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	if (req.Email.Set && !req.Email.Valid) || (req.Role.Set && !req.Role.Valid) {
		return nil, user.ErrRequiredFieldEmpty
	}

	if _, err := uc.repo.GetUserByID(userID); err != nil {
		return nil, err
	}

	if req.Email.Valid {
		taken, err := uc.repo.EmailTaken(req.Email.Value, userID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, user.ErrEmailExists
		}
	}

	updates := map[string]interface{}{}
	req.Email.Column(updates, "email")
	req.Name.Column(updates, "name")
	if req.Role.Valid {
		updates["role"] = models.Role(req.Role.Value)
	}

	updated, err := uc.repo.UpdateUser(userID, updates)
	if err != nil {
		return nil, err
	}

	log.Info("user updated", slog.Int("fields", len(updates)))
	return uc.toUserResponse(updated), nil
}

func (uc *AdminUseCase) DeleteUser(userID uint) error {
	existing, err := uc.repo.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteUser(userID); err != nil {
		return err
	}

	if existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}
	uc.log.Info("user deleted", slog.String("op", "AdminUseCase.DeleteUser"), slog.Uint64("userID", uint64(userID)))
	return nil
}
