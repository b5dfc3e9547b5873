package controller

import (
	"log/slog"
	"net/http"

	"league/pkg/lib/form"
	"league/pkg/lib/params"
	resp "league/pkg/lib/response"
)

// CreateTeam
// @Summary Create a team
// @Tags teams
// @Accept mpfd,json
// @Produce json
// @Param name formData string true "Team name"
// @Param stadium formData string false "Stadium"
// @Param city formData string false "City"
// @Param seriesId formData integer false "Series ID"
// @Param imagen formData file false "Team image"
// @Success 201 {object} response.SuccessResponse{data=team.TeamResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /teams [post]
func (c *TeamController) CreateTeam(w http.ResponseWriter, r *http.Request) {
	op := "TeamController.CreateTeam"
	log := c.log.With(slog.String("op", op))

	values, err := form.DecodeLimited(w, r, c.maxBody)
	if err != nil {
		status, msg := form.ErrorStatus(err)
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, status, msg)
		return
	}

	req, err := newCreateTeamRequest(values)
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed for CreateTeamRequest", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	teamResponse, err := c.useCase.CreateTeam(req, form.File(r, "imagen", "image"))
	if err != nil {
		log.Error("usecase CreateTeam failed", "error", err)
		c.sendError(w, r, err, "failed to create team")
		return
	}

	log.Info("team created", slog.Uint64("teamID", uint64(teamResponse.ID)))
	resp.SendSuccess(w, r, http.StatusCreated, teamResponse)
}

// GetTeams
// @Summary List teams with players and series
// @Tags teams
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]team.TeamResponse}
// @Router /teams [get]
func (c *TeamController) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := c.useCase.GetTeams()
	if err != nil {
		c.sendError(w, r, err, "failed to retrieve teams")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, teams)
}

// CountTeams
// @Summary Count teams
// @Tags teams
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=response.CountData}
// @Router /teams/count [get]
func (c *TeamController) CountTeams(w http.ResponseWriter, r *http.Request) {
	count, err := c.useCase.CountTeams()
	if err != nil {
		c.sendError(w, r, err, "failed to count teams")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, resp.CountData{Count: count})
}

// GetTeamsWithSeries
// @Summary List teams with their series
// @Tags teams
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]team.TeamResponse}
// @Router /teams/with-series [get]
func (c *TeamController) GetTeamsWithSeries(w http.ResponseWriter, r *http.Request) {
	teams, err := c.useCase.GetTeamsWithSeries()
	if err != nil {
		c.sendError(w, r, err, "failed to retrieve teams")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, teams)
}

// GetTeam
// @Summary Get a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} response.SuccessResponse{data=team.TeamResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [get]
func (c *TeamController) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	teamResponse, err := c.useCase.GetTeam(teamID)
	if err != nil {
		c.sendError(w, r, err, "failed to retrieve team")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, teamResponse)
}

// UpdateTeam
// @Summary Partially update a team
// @Tags teams
// @Accept mpfd,json
// @Produce json
// @Param id path int true "Team ID"
// @Param imagen formData file false "New team image"
// @Success 200 {object} response.SuccessResponse{data=team.TeamResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [patch]
func (c *TeamController) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	op := "TeamController.UpdateTeam"
	log := c.log.With(slog.String("op", op))

	teamID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	log = log.With(slog.Uint64("teamID", uint64(teamID)))

	values, err := form.DecodeLimited(w, r, c.maxBody)
	if err != nil {
		status, msg := form.ErrorStatus(err)
		resp.SendError(w, r, status, msg)
		return
	}

	req, err := newUpdateTeamRequest(values)
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed for UpdateTeamRequest", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	teamResponse, err := c.useCase.UpdateTeam(teamID, req, form.File(r, "imagen", "image"))
	if err != nil {
		log.Warn("usecase UpdateTeam failed", "error", err)
		c.sendError(w, r, err, "failed to update team")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, teamResponse)
}

// DeleteTeam
// @Summary Delete a team
// @Tags teams
// @Description Players of the team are kept and detached from it.
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} response.SuccessResponse{data=team.DeleteTeamResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /teams/{id} [delete]
func (c *TeamController) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	op := "TeamController.DeleteTeam"
	log := c.log.With(slog.String("op", op))

	teamID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := c.useCase.DeleteTeam(teamID)
	if err != nil {
		log.Warn("usecase DeleteTeam failed", "error", err, "teamID", teamID)
		c.sendError(w, r, err, "failed to delete team")
		return
	}

	log.Info("team deleted", slog.Uint64("teamID", uint64(teamID)), slog.Int64("detachedPlayers", deleted.DetachedPlayers))
	resp.SendSuccess(w, r, http.StatusOK, deleted)
}
