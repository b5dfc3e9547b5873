package usecase

import (
	"errors"
	"log/slog"
	"mime/multipart"

	"league/internal/models"
	"league/internal/modules/media"
	"league/internal/modules/player"
)

// PlayerUseCase реализует интерфейс player.UseCase.
type PlayerUseCase struct {
	repo  player.Repo
	media media.UseCase
	log   *slog.Logger
}

func NewPlayerUseCase(repo player.Repo, mediaUC media.UseCase, log *slog.Logger) *PlayerUseCase {
	return &PlayerUseCase{
		repo:  repo,
		media: mediaUC,
		log:   log,
	}
}

func (uc *PlayerUseCase) toPlayerResponse(p *models.Player) *player.PlayerResponse {
	resp := &player.PlayerResponse{
		ID:                 p.ID,
		Name:               p.Name,
		JerseyNumber:       p.JerseyNumber,
		Position:           p.Position,
		BirthDate:          p.BirthDate,
		Nationality:        p.Nationality,
		Description:        p.Description,
		Height:             p.Height,
		Weight:             p.Weight,
		SecondaryPosition1: p.SecondaryPosition1,
		SecondaryPosition2: p.SecondaryPosition2,
		Rarity:             p.Rarity,
		Image:              p.Image,
		ImageURL:           uc.media.PublicURL(p.Image),
		TeamID:             p.TeamID,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	if t := p.Team; t != nil {
		resp.Team = &player.TeamSummary{
			ID:       t.ID,
			Name:     t.Name,
			Image:    t.Image,
			ImageURL: uc.media.PublicURL(t.Image),
			SeriesID: t.SeriesID,
		}
		if s := t.Series; s != nil {
			resp.Team.Series = &player.SeriesSummary{
				ID:       s.ID,
				Name:     s.Name,
				Season:   s.Season,
				Image:    s.Image,
				ImageURL: uc.media.PublicURL(s.Image),
			}
		}
	}
	return resp
}

func (uc *PlayerUseCase) toPlayerResponses(players []*models.Player) []*player.PlayerResponse {
	responses := make([]*player.PlayerResponse, len(players))
	for i, p := range players {
		responses[i] = uc.toPlayerResponse(p)
	}
	return responses
}

func (uc *PlayerUseCase) ensureTeamExists(teamID *uint) error {
	if teamID == nil {
		return nil
	}
	exists, err := uc.repo.TeamExists(*teamID)
	if err != nil {
		return err
	}
	if !exists {
		return player.ErrTeamNotFound
	}
	return nil
}

func (uc *PlayerUseCase) CreatePlayer(req player.CreatePlayerRequest, image *multipart.FileHeader) (*player.PlayerResponse, error) {
	op := "PlayerUseCase.CreatePlayer"
	log := uc.log.With(slog.String("op", op), slog.String("name", req.Name))

	if err := uc.ensureTeamExists(req.TeamID); err != nil {
		log.Warn("team check failed", "error", err)
		return nil, err
	}

	p := &models.Player{
		Name:               req.Name,
		JerseyNumber:       req.JerseyNumber,
		Position:           models.Position(req.Position),
		BirthDate:          req.BirthDate,
		Nationality:        req.Nationality,
		Description:        req.Description,
		Height:             req.Height,
		Weight:             req.Weight,
		SecondaryPosition1: req.SecondaryPosition1,
		SecondaryPosition2: req.SecondaryPosition2,
		Rarity:             req.Rarity,
		TeamID:             req.TeamID,
	}

	if image != nil {
		path, err := uc.media.SaveImage(image)
		if err != nil {
			log.Warn("failed to save player image", "error", err)
			return nil, err
		}
		p.Image = &path
	}

	if err := uc.repo.CreatePlayer(p); err != nil {
		log.Error("failed to create player", "error", err)
		if p.Image != nil {
			uc.media.Delete(*p.Image)
		}
		return nil, player.ErrPlayerInternal
	}

	log.Info("player created", slog.Uint64("playerID", uint64(p.ID)))
	return uc.toPlayerResponse(p), nil
}

func (uc *PlayerUseCase) GetPlayers() ([]*player.PlayerResponse, error) {
	players, err := uc.repo.GetPlayers()
	if err != nil {
		return nil, err
	}
	return uc.toPlayerResponses(players), nil
}

func (uc *PlayerUseCase) GetPlayersWithDetails() ([]*player.PlayerResponse, error) {
	players, err := uc.repo.GetPlayersNewestFirst()
	if err != nil {
		return nil, err
	}
	return uc.toPlayerResponses(players), nil
}

func (uc *PlayerUseCase) CountPlayers() (int64, error) {
	return uc.repo.CountPlayers()
}

func (uc *PlayerUseCase) GetPlayer(playerID uint) (*player.PlayerResponse, error) {
	p, err := uc.repo.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}
	return uc.toPlayerResponse(p), nil
}

func (uc *PlayerUseCase) UpdatePlayer(playerID uint, req player.UpdatePlayerRequest, image *multipart.FileHeader) (*player.PlayerResponse, error) {
	op := "PlayerUseCase.UpdatePlayer"
	log := uc.log.With(slog.String("op", op), slog.Uint64("playerID", uint64(playerID)))

	if (req.Name.Set && !req.Name.Valid) || (req.JerseyNumber.Set && !req.JerseyNumber.Valid) || (req.Position.Set && !req.Position.Valid) {
		return nil, player.ErrRequiredFieldEmpty
	}

	existing, err := uc.repo.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	if err := uc.ensureTeamExists(req.TeamID.Ptr()); err != nil {
		log.Warn("team check failed", "error", err)
		return nil, err
	}

	updates := map[string]interface{}{}
	req.Name.Column(updates, "name")
	req.JerseyNumber.Column(updates, "jersey_number")
	if req.Position.Set {
		updates["position"] = models.Position(req.Position.Value)
	}
	req.BirthDate.Column(updates, "birth_date")
	req.Nationality.Column(updates, "nationality")
	req.Description.Column(updates, "description")
	req.TeamID.Column(updates, "team_id")
	req.Height.Column(updates, "height")
	req.Weight.Column(updates, "weight")
	req.SecondaryPosition1.Column(updates, "secondary_position_1")
	req.SecondaryPosition2.Column(updates, "secondary_position_2")
	req.Rarity.Column(updates, "rarity")

	var newImage *string
	if image != nil {
		path, err := uc.media.SaveImage(image)
		if err != nil {
			log.Warn("failed to save player image", "error", err)
			return nil, err
		}
		newImage = &path
		updates["image"] = path
	}

	updated, err := uc.repo.UpdatePlayer(playerID, updates)
	if err != nil {
		log.Error("failed to update player", "error", err)
		if newImage != nil {
			uc.media.Delete(*newImage)
		}
		return nil, err
	}

	if newImage != nil && existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("player updated", slog.Int("fields", len(updates)))
	return uc.toPlayerResponse(updated), nil
}

func (uc *PlayerUseCase) UpdatePlayerImage(playerID uint, image *multipart.FileHeader) (*player.PlayerResponse, error) {
	op := "PlayerUseCase.UpdatePlayerImage"
	log := uc.log.With(slog.String("op", op), slog.Uint64("playerID", uint64(playerID)))

	if image == nil {
		return nil, media.ErrNoImage
	}

	existing, err := uc.repo.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	path, err := uc.media.SaveImage(image)
	if err != nil {
		log.Warn("failed to save player image", "error", err)
		return nil, err
	}

	updated, err := uc.repo.UpdatePlayer(playerID, map[string]interface{}{"image": path})
	if err != nil {
		log.Error("failed to update player image", "error", err)
		uc.media.Delete(path)
		return nil, err
	}

	if existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("player image updated", slog.String("image", path))
	return uc.toPlayerResponse(updated), nil
}

func (uc *PlayerUseCase) DeletePlayer(playerID uint) (*player.PlayerResponse, error) {
	op := "PlayerUseCase.DeletePlayer"
	log := uc.log.With(slog.String("op", op), slog.Uint64("playerID", uint64(playerID)))

	existing, err := uc.repo.GetPlayerByID(playerID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.DeletePlayer(playerID); err != nil {
		if !errors.Is(err, player.ErrPlayerNotFound) {
			log.Error("failed to delete player", "error", err)
		}
		return nil, err
	}

	if existing.Image != nil {
		uc.media.Delete(*existing.Image)
	}

	log.Info("player deleted")
	return uc.toPlayerResponse(existing), nil
}
