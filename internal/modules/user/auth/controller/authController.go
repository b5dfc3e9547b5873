package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"league/config"
	"league/internal/modules/media"
	"league/internal/modules/user"
	"league/internal/modules/user/auth"
	resp "league/pkg/lib/response"
	"league/pkg/lib/validate"

	"github.com/go-playground/validator/v10"
)

type AuthController struct {
	log      *slog.Logger
	uc       auth.UseCase
	validate *validator.Validate
	maxBody  int64
}

func NewAuthController(log *slog.Logger, uc auth.UseCase, cfg config.StorageConfig) *AuthController {
	maxImage := cfg.MaxImageSizeBytes
	if maxImage == 0 {
		maxImage = 5 * 1024 * 1024
	}
	return &AuthController{
		log:      log,
		uc:       uc,
		validate: validate.New(),
		maxBody:  maxImage + 1<<20,
	}
}

func (c *AuthController) sendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials), errors.Is(err, user.ErrUnauthorized):
		resp.SendError(w, r, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		resp.SendError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, media.ErrNoImage):
		resp.SendError(w, r, http.StatusBadRequest, "no image was provided")
	case errors.Is(err, media.ErrInvalidImage):
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrImageTooLarge):
		resp.SendError(w, r, http.StatusRequestEntityTooLarge, err.Error())
	default:
		resp.SendError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
