package controller

import (
	"log/slog"
	"net/http"

	"league/pkg/lib/form"
	"league/pkg/lib/params"
	resp "league/pkg/lib/response"
)

// CreateSeries
// @Summary Create a series
// @Tags series
// @Description The pair (name, season) must be unique.
// @Accept mpfd,json
// @Produce json
// @Param name formData string true "Series name"
// @Param season formData string false "Season"
// @Param launchDate formData string false "Launch date (YYYY-MM-DD)"
// @Param imagen formData file false "Series image"
// @Success 201 {object} response.SuccessResponse{data=series.SeriesResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /series [post]
func (c *SeriesController) CreateSeries(w http.ResponseWriter, r *http.Request) {
	op := "SeriesController.CreateSeries"
	log := c.log.With(slog.String("op", op))

	values, err := form.DecodeLimited(w, r, c.maxBody)
	if err != nil {
		status, msg := form.ErrorStatus(err)
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, status, msg)
		return
	}

	req, err := newCreateSeriesRequest(values)
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed for CreateSeriesRequest", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	seriesResponse, err := c.useCase.CreateSeries(req, form.File(r, "imagen", "image"))
	if err != nil {
		log.Warn("usecase CreateSeries failed", "error", err)
		c.sendError(w, r, err, "failed to create series")
		return
	}

	log.Info("series created", slog.Uint64("seriesID", uint64(seriesResponse.ID)))
	resp.SendSuccess(w, r, http.StatusCreated, seriesResponse)
}

// GetAllSeries
// @Summary List series with their teams
// @Tags series
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]series.SeriesResponse}
// @Router /series [get]
func (c *SeriesController) GetAllSeries(w http.ResponseWriter, r *http.Request) {
	list, err := c.useCase.GetAllSeries()
	if err != nil {
		c.sendError(w, r, err, "failed to retrieve series")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, list)
}

// CountSeries
// @Summary Count series
// @Tags series
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=response.CountData}
// @Router /series/count [get]
func (c *SeriesController) CountSeries(w http.ResponseWriter, r *http.Request) {
	count, err := c.useCase.CountSeries()
	if err != nil {
		c.sendError(w, r, err, "failed to count series")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, resp.CountData{Count: count})
}

// GetLatestSeries
// @Summary Three most recently created series
// @Tags series
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]series.SeriesResponse}
// @Router /series/latest [get]
func (c *SeriesController) GetLatestSeries(w http.ResponseWriter, r *http.Request) {
	list, err := c.useCase.GetLatestSeries()
	if err != nil {
		c.sendError(w, r, err, "failed to retrieve latest series")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, list)
}

// GetSeries
// @Summary Get a series
// @Tags series
// @Produce json
// @Param id path int true "Series ID"
// @Success 200 {object} response.SuccessResponse{data=series.SeriesResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /series/{id} [get]
func (c *SeriesController) GetSeries(w http.ResponseWriter, r *http.Request) {
	seriesID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	seriesResponse, err := c.useCase.GetSeries(seriesID)
	if err != nil {
		c.sendError(w, r, err, "failed to retrieve series")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, seriesResponse)
}

// UpdateSeries
// @Summary Partially update a series
// @Tags series
// @Accept mpfd,json
// @Produce json
// @Param id path int true "Series ID"
// @Param imagen formData file false "New series image"
// @Success 200 {object} response.SuccessResponse{data=series.SeriesResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /series/{id} [patch]
func (c *SeriesController) UpdateSeries(w http.ResponseWriter, r *http.Request) {
	op := "SeriesController.UpdateSeries"
	log := c.log.With(slog.String("op", op))

	seriesID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	values, err := form.DecodeLimited(w, r, c.maxBody)
	if err != nil {
		status, msg := form.ErrorStatus(err)
		resp.SendError(w, r, status, msg)
		return
	}

	req, err := newUpdateSeriesRequest(values)
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed for UpdateSeriesRequest", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	seriesResponse, err := c.useCase.UpdateSeries(seriesID, req, form.File(r, "imagen", "image"))
	if err != nil {
		log.Warn("usecase UpdateSeries failed", "error", err, "seriesID", seriesID)
		c.sendError(w, r, err, "failed to update series")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, seriesResponse)
}

// DeleteSeries
// @Summary Delete a series
// @Tags series
// @Description Teams of the series are kept and detached from it.
// @Produce json
// @Param id path int true "Series ID"
// @Success 200 {object} response.SuccessResponse{data=series.DeleteSeriesResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /series/{id} [delete]
func (c *SeriesController) DeleteSeries(w http.ResponseWriter, r *http.Request) {
	seriesID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := c.useCase.DeleteSeries(seriesID)
	if err != nil {
		c.sendError(w, r, err, "failed to delete series")
		return
	}

	c.log.Info("series deleted", slog.String("op", "SeriesController.DeleteSeries"), slog.Uint64("seriesID", uint64(seriesID)))
	resp.SendSuccess(w, r, http.StatusOK, deleted)
}
