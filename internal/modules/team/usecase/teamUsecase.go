package usecase

import (
	"log/slog"
	"mime/multipart"

	"league/internal/models"
	"league/internal/modules/media"
	"league/internal/modules/team"
)

// TeamUseCase реализует интерфейс team.UseCase.
type TeamUseCase struct {
	repo  team.Repo
	media media.UseCase
	log   *slog.Logger
}

func NewTeamUseCase(repo team.Repo, mediaUC media.UseCase, log *slog.Logger) *TeamUseCase {
	return &TeamUseCase{
		repo:  repo,
		media: mediaUC,
		log:   log,
	}
}

func (uc *TeamUseCase) toTeamResponse(t *models.Team) *team.TeamResponse {
	resp := &team.TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		Stadium:     t.Stadium,
		City:        t.City,
		Description: t.Description,
		Image:       t.Image,
		ImageURL:    uc.media.PublicURL(t.Image),
		SeriesID:    t.SeriesID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if s := t.Series; s != nil {
		resp.Series = &team.SeriesSummary{
			ID:       s.ID,
			Name:     s.Name,
			Season:   s.Season,
			Status:   s.Status,
			Image:    s.Image,
			ImageURL: uc.media.PublicURL(s.Image),
		}
	}

	if len(t.Players) > 0 {
		resp.Players = make([]*team.PlayerSummary, len(t.Players))
		for i, p := range t.Players {
			resp.Players[i] = &team.PlayerSummary{
				ID:           p.ID,
				Name:         p.Name,
				JerseyNumber: p.JerseyNumber,
				Position:     p.Position,
				Rarity:       p.Rarity,
				Image:        p.Image,
				ImageURL:     uc.media.PublicURL(p.Image),
			}
		}
	}
	return resp
}

func (uc *TeamUseCase) toTeamResponses(teams []*models.Team) []*team.TeamResponse {
	responses := make([]*team.TeamResponse, len(teams))
	for i, t := range teams {
		responses[i] = uc.toTeamResponse(t)
	}
	return responses
}

func (uc *TeamUseCase) ensureSeriesExists(seriesID *uint) error {
	if seriesID == nil {
		return nil
	}
	exists, err := uc.repo.SeriesExists(*seriesID)
	if err != nil {
		return err
	}
	if !exists {
		return team.ErrSeriesNotFound
	}
	return nil
}

func (uc *TeamUseCase) CreateTeam(req team.CreateTeamRequest, image *multipart.FileHeader) (*team.TeamResponse, error) {
	op := "TeamUseCase.CreateTeam"
	log := uc.log.With(slog.String("op", op), slog.String("name", req.Name))

	if err := uc.ensureSeriesExists(req.SeriesID); err != nil {
		log.Warn("series check failed", "error", err)
		return nil, err
	}

	t := &models.Team{
		Name:        req.Name,
		Stadium:     req.Stadium,
		City:        req.City,
		Description: req.Description,
		SeriesID:    req.SeriesID,
	}

	if image != nil {
		path, err := uc.media.SaveImage(image)
		if err != nil {
			log.Warn("failed to save team image", "error", err)
			return nil, err
		}
		t.Image = &path
	}

	if err := uc.repo.CreateTeam(t); err != nil {
		if t.Image != nil {
			uc.media.Delete(*t.Image)
		}
		return nil, err
	}

	// перечитываем, чтобы вернуть серию
	created, err := uc.repo.GetTeamByID(t.ID)
	if err != nil {
		return uc.toTeamResponse(t), nil
	}
	return uc.toTeamResponse(created), nil
}

func (uc *TeamUseCase) GetTeams() ([]*team.TeamResponse, error) {
	teams, err := uc.repo.GetTeams()
	if err != nil {
		return nil, err
	}
	return uc.toTeamResponses(teams), nil
}

func (uc *TeamUseCase) CountTeams() (int64, error) {
	return uc.repo.CountTeams()
}

func (uc *TeamUseCase) GetTeamsWithSeries() ([]*team.TeamResponse, error) {
	teams, err := uc.repo.GetTeamsWithSeries()
	if err != nil {
		return nil, err
	}
	return uc.toTeamResponses(teams), nil
}

func (uc *TeamUseCase) GetTeam(teamID uint) (*team.TeamResponse, error) {
	t, err := uc.repo.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}
	return uc.toTeamResponse(t), nil
}

func (uc *TeamUseCase) UpdateTeam(teamID uint, req team.UpdateTeamRequest, image *multipart.FileHeader) (*team.TeamResponse, error) {
	op := "TeamUseCase.UpdateTeam"
	log := uc.log.With(slog.String("op", op), slog.Uint64("teamID", uint64(teamID)))

	if req.Name.Set && !req.Name.Valid {
		return nil, team.ErrTeamNameRequired
	}

	existing, err := uc.repo.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureSeriesExists(req.SeriesID.Ptr()); err != nil {
		log.Warn("series check failed", "error", err)
		return nil, err
	}

	updates := map[string]interface{}{}
	req.Name.Column(updates, "name")
	req.Stadium.Column(updates, "stadium")
	req.City.Column(updates, "city")
	req.Description.Column(updates, "description")
	req.SeriesID.Column(updates, "series_id")

	var newImage *string
	if image != nil {
		path, err := uc.media.SaveImage(image)
		if err != nil {
			log.Warn("failed to save team image", "error", err)
			return nil, err
		}
		newImage = &path
		updates["image"] = path
	}

	updated, err := uc.repo.UpdateTeam(teamID, updates)
	if err != nil {
		if newImage != nil {
			uc.media.Delete(*newImage)
		}
		return nil, err
	}

	if newImage != nil && existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("team updated", slog.Int("fields", len(updates)))
	return uc.toTeamResponse(updated), nil
}

func (uc *TeamUseCase) DeleteTeam(teamID uint) (*team.DeleteTeamResponse, error) {
	op := "TeamUseCase.DeleteTeam"
	log := uc.log.With(slog.String("op", op), slog.Uint64("teamID", uint64(teamID)))

	existing, err := uc.repo.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	detached, err := uc.repo.DeleteTeam(teamID)
	if err != nil {
		return nil, err
	}

	if existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("team deleted", slog.Int64("detachedPlayers", detached))
	return &team.DeleteTeamResponse{
		Team:            uc.toTeamResponse(existing),
		DetachedPlayers: detached,
	}, nil
}
