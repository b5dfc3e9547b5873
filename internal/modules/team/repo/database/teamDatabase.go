package database

import (
	"errors"
	"log/slog"

	"league/internal/models"
	"league/internal/modules/team"

	"gorm.io/gorm"
)

// TeamDatabase реализует интерфейс repo.TeamDb
type TeamDatabase struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewTeamDatabase(db *gorm.DB, log *slog.Logger) *TeamDatabase {
	return &TeamDatabase{
		db:  db,
		log: log,
	}
}

func withPlayersAndSeries(db *gorm.DB) *gorm.DB {
	return db.Preload("Series").Preload("Players", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("players.id ASC")
	})
}

func (r *TeamDatabase) CreateTeam(t *models.Team) error {
	op := "TeamDatabase.CreateTeam"
	log := r.log.With(slog.String("op", op), slog.String("name", t.Name))

	if err := r.db.Create(t).Error; err != nil {
		log.Error("failed to create team in DB", "error", err)
		return team.ErrTeamInternal
	}
	log.Info("team created", slog.Uint64("teamID", uint64(t.ID)))
	return nil
}

func (r *TeamDatabase) GetTeams() ([]*models.Team, error) {
	var teams []*models.Team
	if err := withPlayersAndSeries(r.db).Order("id ASC").Find(&teams).Error; err != nil {
		r.log.Error("failed to get teams", slog.String("op", "TeamDatabase.GetTeams"), "error", err)
		return nil, team.ErrTeamInternal
	}
	return teams, nil
}

func (r *TeamDatabase) GetTeamsWithSeries() ([]*models.Team, error) {
	var teams []*models.Team
	if err := r.db.Preload("Series").Order("id ASC").Find(&teams).Error; err != nil {
		r.log.Error("failed to get teams with series", slog.String("op", "TeamDatabase.GetTeamsWithSeries"), "error", err)
		return nil, team.ErrTeamInternal
	}
	return teams, nil
}

func (r *TeamDatabase) CountTeams() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Team{}).Count(&count).Error; err != nil {
		r.log.Error("failed to count teams", slog.String("op", "TeamDatabase.CountTeams"), "error", err)
		return 0, team.ErrTeamInternal
	}
	return count, nil
}

func (r *TeamDatabase) GetTeamByID(teamID uint) (*models.Team, error) {
	op := "TeamDatabase.GetTeamByID"
	log := r.log.With(slog.String("op", op), slog.Uint64("teamID", uint64(teamID)))

	var t models.Team
	if err := withPlayersAndSeries(r.db).First(&t, teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("team not found")
			return nil, team.ErrTeamNotFound
		}
		log.Error("failed to get team by ID", "error", err)
		return nil, team.ErrTeamInternal
	}
	return &t, nil
}

func (r *TeamDatabase) UpdateTeam(teamID uint, updates map[string]interface{}) (*models.Team, error) {
	op := "TeamDatabase.UpdateTeam"
	log := r.log.With(slog.String("op", op), slog.Uint64("teamID", uint64(teamID)))

	if len(updates) > 0 {
		result := r.db.Model(&models.Team{}).Where("id = ?", teamID).Updates(updates)
		if result.Error != nil {
			log.Error("failed to update team", "error", result.Error)
			return nil, team.ErrTeamInternal
		}
		if result.RowsAffected == 0 {
			log.Warn("no rows affected, team not found")
			return nil, team.ErrTeamNotFound
		}
	}

	return r.GetTeamByID(teamID)
}

// DeleteTeam в одной транзакции обнуляет team_id у игроков и удаляет команду.
func (r *TeamDatabase) DeleteTeam(teamID uint) (int64, error) {
	op := "TeamDatabase.DeleteTeam"
	log := r.log.With(slog.String("op", op), slog.Uint64("teamID", uint64(teamID)))

	var detached int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Player{}).Where("team_id = ?", teamID).Update("team_id", nil)
		if res.Error != nil {
			return res.Error
		}
		detached = res.RowsAffected

		res = tx.Delete(&models.Team{}, teamID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return team.ErrTeamNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			log.Warn("team not found for deletion")
			return 0, err
		}
		log.Error("failed to delete team", "error", err)
		return 0, team.ErrTeamInternal
	}

	log.Info("team deleted", slog.Int64("detachedPlayers", detached))
	return detached, nil
}

func (r *TeamDatabase) SeriesExists(seriesID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Series{}).Where("id = ?", seriesID).Count(&count).Error; err != nil {
		r.log.Error("failed to check series existence", slog.String("op", "TeamDatabase.SeriesExists"), "error", err)
		return false, team.ErrTeamInternal
	}
	return count > 0, nil
}
