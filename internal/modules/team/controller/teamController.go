package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"league/config"
	"league/internal/modules/media"
	"league/internal/modules/team"
	"league/pkg/lib/form"
	resp "league/pkg/lib/response"
	"league/pkg/lib/validate"

	"github.com/go-playground/validator/v10"
)

type TeamController struct {
	useCase  team.UseCase
	log      *slog.Logger
	validate *validator.Validate
	maxBody  int64
}

func NewTeamController(useCase team.UseCase, log *slog.Logger, cfg config.StorageConfig) *TeamController {
	maxImage := cfg.MaxImageSizeBytes
	if maxImage == 0 {
		maxImage = 5 * 1024 * 1024
	}
	return &TeamController{
		useCase:  useCase,
		log:      log,
		validate: validate.New(),
		maxBody:  maxImage + 1<<20,
	}
}

func (c *TeamController) sendError(w http.ResponseWriter, r *http.Request, err error, internalMsg string) {
	switch {
	case errors.Is(err, team.ErrTeamNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, team.ErrSeriesNotFound), errors.Is(err, team.ErrTeamNameRequired):
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrInvalidImage):
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, media.ErrImageTooLarge):
		resp.SendError(w, r, http.StatusRequestEntityTooLarge, err.Error())
	default:
		resp.SendError(w, r, http.StatusInternalServerError, internalMsg)
	}
}

func newCreateTeamRequest(v form.Values) (team.CreateTeamRequest, error) {
	var req team.CreateTeamRequest

	name, err := v.String("name")
	if err != nil {
		return req, err
	}
	stadium, err := v.String("stadium")
	if err != nil {
		return req, err
	}
	city, err := v.String("city")
	if err != nil {
		return req, err
	}
	description, err := v.String("description")
	if err != nil {
		return req, err
	}
	seriesID, err := v.Uint("seriesId")
	if err != nil {
		return req, err
	}

	req.Name = name.Value
	req.Stadium = stadium.Ptr()
	req.City = city.Ptr()
	req.Description = description.Ptr()
	req.SeriesID = seriesID.Ptr()
	return req, nil
}

func newUpdateTeamRequest(v form.Values) (team.UpdateTeamRequest, error) {
	var req team.UpdateTeamRequest
	var err error

	if req.Name, err = v.String("name"); err != nil {
		return req, err
	}
	if req.Stadium, err = v.String("stadium"); err != nil {
		return req, err
	}
	if req.City, err = v.String("city"); err != nil {
		return req, err
	}
	if req.Description, err = v.String("description"); err != nil {
		return req, err
	}
	if req.SeriesID, err = v.Uint("seriesId"); err != nil {
		return req, err
	}
	return req, nil
}
