package player

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"league/internal/models"
	"league/pkg/lib/patch"

	"gorm.io/datatypes"
)

// --- DTO для Запросов API ---

type CreatePlayerRequest struct {
	Name               string          `json:"name" validate:"required,min=1,max=100"`
	JerseyNumber       string          `json:"jerseyNumber" validate:"required,max=10"`
	Position           string          `json:"position" validate:"required,position"`
	BirthDate          *datatypes.Date `json:"birthDate,omitempty"`
	Nationality        *string         `json:"nationality,omitempty" validate:"omitempty,max=100"`
	Description        *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	TeamID             *uint           `json:"teamId,omitempty" validate:"omitempty,gt=0"`
	Height             *float64        `json:"height,omitempty" validate:"omitempty,gt=0,lt=300"`
	Weight             *float64        `json:"weight,omitempty" validate:"omitempty,gt=0,lt=500"`
	SecondaryPosition1 *string         `json:"secondaryPosition1,omitempty" validate:"omitempty,max=50"`
	SecondaryPosition2 *string         `json:"secondaryPosition2,omitempty" validate:"omitempty,max=50"`
	Rarity             *string         `json:"rarity,omitempty" validate:"omitempty,max=50"`
}

// UpdatePlayerRequest: отсутствующее поле не меняется, пустое значение записывает null.
type UpdatePlayerRequest struct {
	Name               patch.Field[string]         `json:"name" validate:"omitempty,min=1,max=100"`
	JerseyNumber       patch.Field[string]         `json:"jerseyNumber" validate:"omitempty,max=10"`
	Position           patch.Field[string]         `json:"position" validate:"omitempty,position"`
	BirthDate          patch.Field[datatypes.Date] `json:"birthDate"`
	Nationality        patch.Field[string]         `json:"nationality" validate:"omitempty,max=100"`
	Description        patch.Field[string]         `json:"description" validate:"omitempty,max=2000"`
	TeamID             patch.Field[uint]           `json:"teamId" validate:"omitempty,gt=0"`
	Height             patch.Field[float64]        `json:"height" validate:"omitempty,gt=0,lt=300"`
	Weight             patch.Field[float64]        `json:"weight" validate:"omitempty,gt=0,lt=500"`
	SecondaryPosition1 patch.Field[string]         `json:"secondaryPosition1" validate:"omitempty,max=50"`
	SecondaryPosition2 patch.Field[string]         `json:"secondaryPosition2" validate:"omitempty,max=50"`
	Rarity             patch.Field[string]         `json:"rarity" validate:"omitempty,max=50"`
}

// --- DTO для Ответов API ---

type SeriesSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Season   *string `json:"season"`
	Image    *string `json:"image"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type TeamSummary struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	Image    *string        `json:"image"`
	ImageURL *string        `json:"imageUrl,omitempty"`
	SeriesID *uint          `json:"seriesId"`
	Series   *SeriesSummary `json:"series,omitempty"`
}

type PlayerResponse struct {
	ID                 uint            `json:"id"`
	Name               string          `json:"name"`
	JerseyNumber       string          `json:"jerseyNumber"`
	Position           models.Position `json:"position"`
	BirthDate          *datatypes.Date `json:"birthDate"`
	Nationality        *string         `json:"nationality"`
	Description        *string         `json:"description"`
	Height             *float64        `json:"height"`
	Weight             *float64        `json:"weight"`
	SecondaryPosition1 *string         `json:"secondaryPosition1"`
	SecondaryPosition2 *string         `json:"secondaryPosition2"`
	Rarity             *string         `json:"rarity"`
	Image              *string         `json:"image"`
	ImageURL           *string         `json:"imageUrl,omitempty"`
	TeamID             *uint           `json:"teamId"`
	Team               *TeamSummary    `json:"team,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

type ImportResponse struct {
	Count int `json:"count" example:"25"`
}

// --- Интерфейсы модуля player ---

type Controller interface {
	CreatePlayer(w http.ResponseWriter, r *http.Request)
	GetPlayers(w http.ResponseWriter, r *http.Request)
	CountPlayers(w http.ResponseWriter, r *http.Request)
	GetPlayersWithDetails(w http.ResponseWriter, r *http.Request)
	GetPlayer(w http.ResponseWriter, r *http.Request)
	UpdatePlayer(w http.ResponseWriter, r *http.Request)
	UpdatePlayerImage(w http.ResponseWriter, r *http.Request)
	DeletePlayer(w http.ResponseWriter, r *http.Request)
	ImportPlayers(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	CreatePlayer(req CreatePlayerRequest, image *multipart.FileHeader) (*PlayerResponse, error)
	GetPlayers() ([]*PlayerResponse, error)
	CountPlayers() (int64, error)
	GetPlayersWithDetails() ([]*PlayerResponse, error)
	GetPlayer(playerID uint) (*PlayerResponse, error)
	UpdatePlayer(playerID uint, req UpdatePlayerRequest, image *multipart.FileHeader) (*PlayerResponse, error)
	UpdatePlayerImage(playerID uint, image *multipart.FileHeader) (*PlayerResponse, error)
	DeletePlayer(playerID uint) (*PlayerResponse, error)
	ImportPlayers(file io.Reader) (int, error)
}

type Repo interface {
	CreatePlayer(p *models.Player) error
	CreatePlayers(players []*models.Player) (int, error)
	GetPlayers() ([]*models.Player, error)
	GetPlayersNewestFirst() ([]*models.Player, error)
	CountPlayers() (int64, error)
	GetPlayerByID(playerID uint) (*models.Player, error)
	UpdatePlayer(playerID uint, updates map[string]interface{}) (*models.Player, error)
	DeletePlayer(playerID uint) error
	TeamExists(teamID uint) (bool, error)
}
