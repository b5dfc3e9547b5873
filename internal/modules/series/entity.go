package series

import (
	"mime/multipart"
	"net/http"
	"time"

	"league/internal/models"
	"league/pkg/lib/patch"

	"gorm.io/datatypes"
)

// LatestLimit - сколько серий отдает GET /series/latest.
const LatestLimit = 3

// --- DTO для Запросов API ---

type CreateSeriesRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Season      *string         `json:"season,omitempty" validate:"omitempty,max=50"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=2000"`
	Status      *string         `json:"status,omitempty" validate:"omitempty,max=50"`
	Country     *string         `json:"country,omitempty" validate:"omitempty,max=100"`
	LaunchDate  *datatypes.Date `json:"launchDate,omitempty"`
}

type UpdateSeriesRequest struct {
	Name        patch.Field[string]         `json:"name" validate:"omitempty,min=1,max=100"`
	Season      patch.Field[string]         `json:"season" validate:"omitempty,max=50"`
	Description patch.Field[string]         `json:"description" validate:"omitempty,max=2000"`
	Status      patch.Field[string]         `json:"status" validate:"omitempty,max=50"`
	Country     patch.Field[string]         `json:"country" validate:"omitempty,max=100"`
	LaunchDate  patch.Field[datatypes.Date] `json:"launchDate"`
}

// --- DTO для Ответов API ---

type TeamSummary struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	City     *string `json:"city"`
	Image    *string `json:"image"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

type SeriesResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Season      *string         `json:"season"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	Country     *string         `json:"country"`
	LaunchDate  *datatypes.Date `json:"launchDate"`
	Image       *string         `json:"image"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	Teams       []*TeamSummary  `json:"teams"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type DeleteSeriesResponse struct {
	Series        *SeriesResponse `json:"series"`
	DetachedTeams int64           `json:"detachedTeams" example:"4"`
}

// --- Интерфейсы модуля series ---

type Controller interface {
	CreateSeries(w http.ResponseWriter, r *http.Request)
	GetAllSeries(w http.ResponseWriter, r *http.Request)
	CountSeries(w http.ResponseWriter, r *http.Request)
	GetLatestSeries(w http.ResponseWriter, r *http.Request)
	GetSeries(w http.ResponseWriter, r *http.Request)
	UpdateSeries(w http.ResponseWriter, r *http.Request)
	DeleteSeries(w http.ResponseWriter, r *http.Request)
}

type UseCase interface {
	CreateSeries(req CreateSeriesRequest, image *multipart.FileHeader) (*SeriesResponse, error)
	GetAllSeries() ([]*SeriesResponse, error)
	CountSeries() (int64, error)
	GetLatestSeries() ([]*SeriesResponse, error)
	GetSeries(seriesID uint) (*SeriesResponse, error)
	UpdateSeries(seriesID uint, req UpdateSeriesRequest, image *multipart.FileHeader) (*SeriesResponse, error)
	DeleteSeries(seriesID uint) (*DeleteSeriesResponse, error)
}

type Repo interface {
	CreateSeries(s *models.Series) error
	GetAllSeries() ([]*models.Series, error)
	GetLatestSeries(limit int) ([]*models.Series, error)
	CountSeries() (int64, error)
	GetSeriesByID(seriesID uint) (*models.Series, error)
	UpdateSeries(seriesID uint, updates map[string]interface{}) (*models.Series, error)
	DeleteSeries(seriesID uint) (int64, error)
	// ExistsByNameAndSeason: season == nil ищет серию без сезона.
	ExistsByNameAndSeason(name string, season *string) (bool, error)
}
