package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"league/config"
	"league/internal/modules/media"
	"league/internal/modules/player"
	resp "league/pkg/lib/response"
	"league/pkg/lib/validate"

	"github.com/go-playground/validator/v10"
)

// PlayerController обрабатывает HTTP-запросы для игроков.
type PlayerController struct {
	useCase  player.UseCase
	log      *slog.Logger
	validate *validator.Validate
	cfg      config.StorageConfig
}

func NewPlayerController(useCase player.UseCase, log *slog.Logger, cfg config.StorageConfig) *PlayerController {
	if cfg.MaxImageSizeBytes == 0 {
		cfg.MaxImageSizeBytes = 5 * 1024 * 1024
	}
	if cfg.MaxImportSizeBytes == 0 {
		cfg.MaxImportSizeBytes = 10 * 1024 * 1024
	}
	return &PlayerController{
		useCase:  useCase,
		log:      log,
		validate: validate.New(),
		cfg:      cfg,
	}
}

// bodyLimit - изображение плюс запас на текстовые поля формы.
func (c *PlayerController) bodyLimit() int64 {
	return c.cfg.MaxImageSizeBytes + 1<<20
}

// sendError переводит ошибку use case в HTTP-ответ. internalCode используется для 500.
func (c *PlayerController) sendError(w http.ResponseWriter, r *http.Request, err error, internalCode, internalMsg string) {
	var importErr *player.ImportError
	switch {
	case errors.Is(err, player.ErrPlayerNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, player.ErrTeamNotFound), errors.Is(err, player.ErrRequiredFieldEmpty):
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &importErr):
		resp.SendError(w, r, http.StatusBadRequest, importErr.Error())
	case errors.Is(err, media.ErrNoImage):
		resp.SendCodedError(w, r, http.StatusBadRequest, player.CodeNoImage, "no image was provided", err.Error())
	case errors.Is(err, media.ErrInvalidImage):
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrImageTooLarge):
		resp.SendError(w, r, http.StatusRequestEntityTooLarge, err.Error())
	default:
		resp.SendCodedError(w, r, http.StatusInternalServerError, internalCode, internalMsg, err.Error())
	}
}
