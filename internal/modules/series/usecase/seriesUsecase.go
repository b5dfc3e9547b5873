package usecase

import (
	"log/slog"
	"mime/multipart"

	"league/internal/models"
	"league/internal/modules/media"
	"league/internal/modules/series"
)

// SeriesUseCase реализует интерфейс series.UseCase.
type SeriesUseCase struct {
	repo  series.Repo
	media media.UseCase
	log   *slog.Logger
}

func NewSeriesUseCase(repo series.Repo, mediaUC media.UseCase, log *slog.Logger) *SeriesUseCase {
	return &SeriesUseCase{
		repo:  repo,
		media: mediaUC,
		log:   log,
	}
}

func (uc *SeriesUseCase) toSeriesResponse(s *models.Series) *series.SeriesResponse {
	resp := &series.SeriesResponse{
		ID:          s.ID,
		Name:        s.Name,
		Season:      s.Season,
		Description: s.Description,
		Status:      s.Status,
		Country:     s.Country,
		LaunchDate:  s.LaunchDate,
		Image:       s.Image,
		ImageURL:    uc.media.PublicURL(s.Image),
		Teams:       make([]*series.TeamSummary, len(s.Teams)),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	for i, t := range s.Teams {
		resp.Teams[i] = &series.TeamSummary{
			ID:       t.ID,
			Name:     t.Name,
			City:     t.City,
			Image:    t.Image,
			ImageURL: uc.media.PublicURL(t.Image),
		}
	}
	return resp
}

func (uc *SeriesUseCase) toSeriesResponses(list []*models.Series) []*series.SeriesResponse {
	responses := make([]*series.SeriesResponse, len(list))
	for i, s := range list {
		responses[i] = uc.toSeriesResponse(s)
	}
	return responses
}

func (uc *SeriesUseCase) CreateSeries(req series.CreateSeriesRequest, image *multipart.FileHeader) (*series.SeriesResponse, error) {
	op := "SeriesUseCase.CreateSeries"
	log := uc.log.With(slog.String("op", op), slog.String("name", req.Name))

	exists, err := uc.repo.ExistsByNameAndSeason(req.Name, req.Season)
	if err != nil {
		return nil, err
	}
	if exists {
		log.Warn("series already exists")
		return nil, series.ErrSeriesExists
	}

	s := &models.Series{
		Name:        req.Name,
		Season:      req.Season,
		Description: req.Description,
		Status:      req.Status,
		Country:     req.Country,
		LaunchDate:  req.LaunchDate,
	}

	if image != nil {
		path, err := uc.media.SaveImage(image)
		if err != nil {
			log.Warn("failed to save series image", "error", err)
			return nil, err
		}
		s.Image = &path
	}

	if err := uc.repo.CreateSeries(s); err != nil {
		if s.Image != nil {
			uc.media.Delete(*s.Image)
		}
		return nil, err
	}

	return uc.toSeriesResponse(s), nil
}

func (uc *SeriesUseCase) GetAllSeries() ([]*series.SeriesResponse, error) {
	list, err := uc.repo.GetAllSeries()
	if err != nil {
		return nil, err
	}
	return uc.toSeriesResponses(list), nil
}

func (uc *SeriesUseCase) CountSeries() (int64, error) {
	return uc.repo.CountSeries()
}

func (uc *SeriesUseCase) GetLatestSeries() ([]*series.SeriesResponse, error) {
	list, err := uc.repo.GetLatestSeries(series.LatestLimit)
	if err != nil {
		return nil, err
	}
	return uc.toSeriesResponses(list), nil
}

func (uc *SeriesUseCase) GetSeries(seriesID uint) (*series.SeriesResponse, error) {
	s, err := uc.repo.GetSeriesByID(seriesID)
	if err != nil {
		return nil, err
	}
	return uc.toSeriesResponse(s), nil
}

// UpdateSeries не проверяет уникальность пары (name, season): она проверяется только при создании.
func (uc *SeriesUseCase) UpdateSeries(seriesID uint, req series.UpdateSeriesRequest, image *multipart.FileHeader) (*series.SeriesResponse, error) {
	op := "SeriesUseCase.UpdateSeries"
	log := uc.log.With(slog.String("op", op), slog.Uint64("seriesID", uint64(seriesID)))

	if req.Name.Set && !req.Name.Valid {
		return nil, series.ErrSeriesNameRequired
	}

	existing, err := uc.repo.GetSeriesByID(seriesID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	req.Name.Column(updates, "name")
	req.Season.Column(updates, "season")
	req.Description.Column(updates, "description")
	req.Status.Column(updates, "status")
	req.Country.Column(updates, "country")
	req.LaunchDate.Column(updates, "launch_date")

	var newImage *string
	if image != nil {
		path, err := uc.media.SaveImage(image)
		if err != nil {
			log.Warn("failed to save series image", "error", err)
			return nil, err
		}
		newImage = &path
		updates["image"] = path
	}

	updated, err := uc.repo.UpdateSeries(seriesID, updates)
	if err != nil {
		if newImage != nil {
			uc.media.Delete(*newImage)
		}
		return nil, err
	}

	if newImage != nil && existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("series updated", slog.Int("fields", len(updates)))
	return uc.toSeriesResponse(updated), nil
}

func (uc *SeriesUseCase) DeleteSeries(seriesID uint) (*series.DeleteSeriesResponse, error) {
	op := "SeriesUseCase.DeleteSeries"
	log := uc.log.With(slog.String("op", op), slog.Uint64("seriesID", uint64(seriesID)))

	existing, err := uc.repo.GetSeriesByID(seriesID)
	if err != nil {
		return nil, err
	}

	detached, err := uc.repo.DeleteSeries(seriesID)
	if err != nil {
		return nil, err
	}

	if existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("series deleted", slog.Int64("detachedTeams", detached))
	return &series.DeleteSeriesResponse{
		Series:        uc.toSeriesResponse(existing),
		DetachedTeams: detached,
	}, nil
}
