package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"league/config"
	"league/internal/modules/media"
	"league/internal/modules/series"
	"league/pkg/lib/form"
	resp "league/pkg/lib/response"
	"league/pkg/lib/validate"

	"github.com/go-playground/validator/v10"
)

type SeriesController struct {
	useCase  series.UseCase
	log      *slog.Logger
	validate *validator.Validate
	maxBody  int64
}

func NewSeriesController(useCase series.UseCase, log *slog.Logger, cfg config.StorageConfig) *SeriesController {
	maxImage := cfg.MaxImageSizeBytes
	if maxImage == 0 {
		maxImage = 5 * 1024 * 1024
	}
	return &SeriesController{
		useCase:  useCase,
		log:      log,
		validate: validate.New(),
		maxBody:  maxImage + 1<<20,
	}
}

func (c *SeriesController) sendError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	switch {
	case errors.Is(err, series.ErrSeriesNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, series.ErrSeriesExists):
		resp.SendError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, series.ErrSeriesNameRequired), errors.Is(err, media.ErrInvalidImage):
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrImageTooLarge):
		resp.SendError(w, r, http.StatusRequestEntityTooLarge, err.Error())
	default:
		resp.SendError(w, r, http.StatusInternalServerError, internalMsg)
	}
}

func newCreateSeriesRequest(v form.Values) (series.CreateSeriesRequest, error) {
	var req series.CreateSeriesRequest

	name, err := v.String("name")
	if err != nil {
		return req, err
	}
	season, err := v.String("season")
	if err != nil {
		return req, err
	}
	description, err := v.String("description")
	if err != nil {
		return req, err
	}
	status, err := v.String("status")
	if err != nil {
		return req, err
	}
	country, err := v.String("country")
	if err != nil {
		return req, err
	}
	launchDate, err := v.Date("launchDate")
	if err != nil {
		return req, err
	}

	req.Name = name.Value
	req.Season = season.Ptr()
	req.Description = description.Ptr()
	req.Status = status.Ptr()
	req.Country = country.Ptr()
	req.LaunchDate = launchDate.Ptr()
	return req, nil
}

func newUpdateSeriesRequest(v form.Values) (series.UpdateSeriesRequest, error) {
	var req series.UpdateSeriesRequest
	var err error

	if req.Name, err = v.String("name"); err != nil {
		return req, err
	}
	if req.Season, err = v.String("season"); err != nil {
		return req, err
	}
	if req.Description, err = v.String("description"); err != nil {
		return req, err
	}
	if req.Status, err = v.String("status"); err != nil {
		return req, err
	}
	if req.Country, err = v.String("country"); err != nil {
		return req, err
	}
	if req.LaunchDate, err = v.Date("launchDate"); err != nil {
		return req, err
	}
	return req, nil
}
