package team

import (
	"mime/multipart"
	"net/http"
	"time"

	"league/internal/models"
	"league/pkg/lib/patch"
)

// --- DTO для Запросов API ---

type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Stadium     *string `json:"stadium,omitempty" validate:"omitempty,max=100"`
	City        *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	SeriesID    *uint   `json:"seriesId,omitempty" validate:"omitempty,gt=0"`
}

type UpdateTeamRequest struct {
	Name        patch.Field[string] `json:"name" validate:"omitempty,min=1,max=100"`
	Stadium     patch.Field[string] `json:"stadium" validate:"omitempty,max=100"`
	City        patch.Field[string] `json:"city" validate:"omitempty,max=100"`
	Description patch.Field[string] `json:"description" validate:"omitempty,max=2000"`
	SeriesID    patch.Field[uint]   `json:"seriesId" validate:"omitempty,gt=0"`
}

// --- DTO для Ответов API ---

type PlayerSummary struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	JerseyNumber string          `json:"jerseyNumber"`
	Position     models.Position `json:"position"`
	Rarity       *string         `json:"rarity"`
	Image        *string         `json:"image"`
	ImageURL     *string         `json:"imageUrl,omitempty"`
}

type SeriesSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Season   *string `json:"season"`
	Status   *string `json:"status"`
	Image    *string `json:"image"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type TeamResponse struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Stadium     *string          `json:"stadium"`
	City        *string          `json:"city"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	SeriesID    *uint            `json:"seriesId"`
	Series      *SeriesSummary   `json:"series,omitempty"`
	Players     []*PlayerSummary `json:"players,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type DeleteTeamResponse struct {
	Team            *TeamResponse `json:"team"`
	DetachedPlayers int64         `json:"detachedPlayers" example:"11"`
}

// --- Интерфейсы модуля team ---

type Controller interface {
	CreateTeam(w http.ResponseWriter, r *http.Request)
	GetTeams(w http.ResponseWriter, r *http.Request)
	CountTeams(w http.ResponseWriter, r *http.Request)
	GetTeamsWithSeries(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	CreateTeam(req CreateTeamRequest, image *multipart.FileHeader) (*TeamResponse, error)
	GetTeams() ([]*TeamResponse, error)
	CountTeams() (int64, error)
	GetTeamsWithSeries() ([]*TeamResponse, error)
	GetTeam(teamID uint) (*TeamResponse, error)
	UpdateTeam(teamID uint, req UpdateTeamRequest, image *multipart.FileHeader) (*TeamResponse, error)
	DeleteTeam(teamID uint) (*DeleteTeamResponse, error)
}

type Repo interface {
	CreateTeam(t *models.Team) error
	GetTeams() ([]*models.Team, error)
	GetTeamsWithSeries() ([]*models.Team, error)
	CountTeams() (int64, error)
	GetTeamByID(teamID uint) (*models.Team, error)
	UpdateTeam(teamID uint, updates map[string]interface{}) (*models.Team, error)
	// DeleteTeam отвязывает игроков и удаляет команду, возвращает число отвязанных игроков.
	DeleteTeam(teamID uint) (int64, error)
	SeriesExists(seriesID uint) (bool, error)
}
