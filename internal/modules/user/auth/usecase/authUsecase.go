package usecase

import (
	"errors"
	"log/slog"
	"mime/multipart"

	"league/internal/models"
	"league/internal/modules/media"
	"league/internal/modules/user"
	"league/internal/modules/user/auth"
	"league/pkg/lib/jwt"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	log    *slog.Logger
	rp     auth.Repo
	tokens *jwt.Manager
	media  media.UseCase
}

func NewAuthUseCase(log *slog.Logger, rp auth.Repo, tokens *jwt.Manager, mediaUC media.UseCase) *AuthUseCase {
	return &AuthUseCase{
		log:    log,
		rp:     rp,
		tokens: tokens,
		media:  mediaUC,
	}
}

func (uc *AuthUseCase) toUserResponse(u *models.User) *user.UserResponse {
	return user.NewUserResponse(u, uc.media.PublicURL(u.Image))
}

func (uc *AuthUseCase) issue(u *models.User) (*auth.AuthResponse, error) {
	accessToken, err := uc.tokens.GenerateAccessToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		uc.log.Error("failed to sign access token", slog.String("op", "AuthUseCase.issue"), "error", err)
		return nil, user.ErrInternal
	}
	return &auth.AuthResponse{
		AccessToken: accessToken,
		User:        uc.toUserResponse(u),
	}, nil
}

// Login не различает "нет пользователя" и "неверный пароль".
func (uc *AuthUseCase) Login(email, password string) (*auth.AuthResponse, error) {
	op := "AuthUseCase.Login"
	log := uc.log.With(slog.String("op", op))

	u, err := uc.rp.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			log.Info("login for unknown email")
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		log.Info("wrong password", slog.Uint64("userID", uint64(u.ID)))
		return nil, user.ErrInvalidCredentials
	}

	return uc.issue(u)
}

func (uc *AuthUseCase) Register(req auth.RegisterRequest) (*auth.AuthResponse, error) {
	op := "AuthUseCase.Register"
	log := uc.log.With(slog.String("op", op))

	exists, err := uc.rp.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Info("email already registered")
		return nil, user.ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), user.BcryptCost)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, user.ErrInternal
	}

	role := models.RoleUser
	if req.Role != nil {
		role = models.Role(*req.Role)
	}

	u := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := uc.rp.CreateUser(u); err != nil {
		return nil, err
	}
	if role == models.RoleAdmin {
		log.Warn("admin account self-registered", slog.Uint64("userID", uint64(u.ID)), slog.String("email", u.Email))
	}

	return uc.issue(u)
}

func (uc *AuthUseCase) Profile(userID uint) (*user.UserResponse, error) {
	u, err := uc.rp.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return uc.toUserResponse(u), nil
}

func (uc *AuthUseCase) UpdateProfileImage(userID uint, image *multipart.FileHeader) (*user.UserResponse, error) {
	op := "AuthUseCase.UpdateProfileImage"
	log := uc.log.With(slog.String("op", op), slog.Uint64("userID", uint64(userID)))

	if image == nil {
		return nil, media.ErrNoImage
	}

	existing, err := uc.rp.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	path, err := uc.media.SaveImage(image)
	if err != nil {
		log.Warn("failed to save profile image", "error", err)
		return nil, err
	}

	updated, err := uc.rp.UpdateUserImage(userID, path)
	if err != nil {
		uc.media.Delete(path)
		return nil, err
	}

	if existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("profile image updated")
	return uc.toUserResponse(updated), nil
}
