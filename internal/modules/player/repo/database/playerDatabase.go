package database

import (
	"errors"
	"log/slog"

	"league/internal/models"
	"league/internal/modules/player"

	"gorm.io/gorm"
)

const importBatchSize = 100

// PlayerDatabase реализует интерфейс repo.PlayerDb
type PlayerDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewPlayerDatabase(db *gorm.DB, log *slog.Logger) *PlayerDatabase {
	return &PlayerDatabase{
		db:  db,
		log: log,
	}
}

func withTeamAndSeries(db *gorm.DB) *gorm.DB {
	return db.Preload("Team").Preload("Team.Series")
}

func (r *PlayerDatabase) CreatePlayer(p *models.Player) error {
	op := "PlayerDatabase.CreatePlayer"
	log := r.log.With(slog.String("op", op), slog.String("name", p.Name))

	if err := r.db.Create(p).Error; err != nil {
		log.Error("failed to create player in DB", "error", err)
		return player.ErrPlayerInternal
	}
	log.Info("player created", slog.Uint64("playerID", uint64(p.ID)))
	return nil
}

// CreatePlayers вставляет все записи одной транзакцией: либо все, либо ни одной.
func (r *PlayerDatabase) CreatePlayers(players []*models.Player) (int, error) {
	op := "PlayerDatabase.CreatePlayers"
	log := r.log.With(slog.String("op", op), slog.Int("rows", len(players)))

	if len(players) == 0 {
		return 0, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(players, importBatchSize).Error
	})
	if err != nil {
		log.Error("failed to insert players batch", "error", err)
		return 0, player.ErrPlayerInternal
	}
	log.Info("players batch inserted")
	return len(players), nil
}

func (r *PlayerDatabase) GetPlayers() ([]*models.Player, error) {
	op := "PlayerDatabase.GetPlayers"
	log := r.log.With(slog.String("op", op))

	var players []*models.Player
	if err := withTeamAndSeries(r.db).Order("id ASC").Find(&players).Error; err != nil {
		log.Error("failed to get players", "error", err)
		return nil, player.ErrPlayerInternal
	}
	return players, nil
}

func (r *PlayerDatabase) GetPlayersNewestFirst() ([]*models.Player, error) {
	op := "PlayerDatabase.GetPlayersNewestFirst"
	log := r.log.With(slog.String("op", op))

	var players []*models.Player
	if err := withTeamAndSeries(r.db).Order("created_at DESC").Order("id DESC").Find(&players).Error; err != nil {
		log.Error("failed to get players with details", "error", err)
		return nil, player.ErrPlayerInternal
	}
	return players, nil
}

func (r *PlayerDatabase) CountPlayers() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Player{}).Count(&count).Error; err != nil {
		r.log.Error("failed to count players", slog.String("op", "PlayerDatabase.CountPlayers"), "error", err)
		return 0, player.ErrPlayerInternal
	}
	return count, nil
}

func (r *PlayerDatabase) GetPlayerByID(playerID uint) (*models.Player, error) {
	op := "PlayerDatabase.GetPlayerByID"
	log := r.log.With(slog.String("op", op), slog.Uint64("playerID", uint64(playerID)))

	var p models.Player
	if err := r.db.First(&p, playerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("player not found")
			return nil, player.ErrPlayerNotFound
		}
		log.Error("failed to get player by ID", "error", err)
		return nil, player.ErrPlayerInternal
	}
	return &p, nil
}

func (r *PlayerDatabase) UpdatePlayer(playerID uint, updates map[string]interface{}) (*models.Player, error) {
	op := "PlayerDatabase.UpdatePlayer"
	log := r.log.With(slog.String("op", op), slog.Uint64("playerID", uint64(playerID)))

	if len(updates) > 0 {
		result := r.db.Model(&models.Player{}).Where("id = ?", playerID).Updates(updates)
		if result.Error != nil {
			log.Error("failed to update player", "error", result.Error)
			return nil, player.ErrPlayerInternal
		}
		if result.RowsAffected == 0 {
			log.Warn("no rows affected, player not found")
			return nil, player.ErrPlayerNotFound
		}
	}

	return r.GetPlayerByID(playerID)
}

func (r *PlayerDatabase) DeletePlayer(playerID uint) error {
	op := "PlayerDatabase.DeletePlayer"
	log := r.log.With(slog.String("op", op), slog.Uint64("playerID", uint64(playerID)))

	result := r.db.Delete(&models.Player{}, playerID)
	if result.Error != nil {
		log.Error("failed to delete player", "error", result.Error)
		return player.ErrPlayerInternal
	}
	if result.RowsAffected == 0 {
		log.Warn("player not found for deletion")
		return player.ErrPlayerNotFound
	}
	log.Info("player deleted")
	return nil
}

func (r *PlayerDatabase) TeamExists(teamID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
		r.log.Error("failed to check team existence", slog.String("op", "PlayerDatabase.TeamExists"), "error", err)
		return false, player.ErrPlayerInternal
	}
	return count > 0, nil
}
