package controller

import (
	"log/slog"
	"net/http"

	"league/internal/modules/player"
	"league/pkg/lib/form"
	"league/pkg/lib/params"
	resp "league/pkg/lib/response"
)

// CreatePlayer
// @Summary Create a player
// @Tags players
// @Description Creates a player card. Accepts multipart/form-data (optional file field "imagen") or JSON.
// @Accept mpfd,json
// @Produce json
// @Param name formData string true "Player name"
// @Param jerseyNumber formData string true "Jersey number"
// @Param position formData string true "Goalkeeper, Defender, Midfielder, Forward or Bench"
// @Param height formData number false "Height"
// @Param teamId formData integer false "Team ID"
// @Param imagen formData file false "Player image"
// @Success 201 {object} response.SuccessResponse{data=player.PlayerResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "ERR_001"
// @Router /players [post]
func (c *PlayerController) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	op := "PlayerController.CreatePlayer"
	log := c.log.With(slog.String("op", op))

	values, err := form.DecodeLimited(w, r, c.bodyLimit())
	if err != nil {
		status, msg := form.ErrorStatus(err)
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, status, msg)
		return
	}

	req, err := newCreatePlayerRequest(values)
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed for CreatePlayerRequest", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	playerResponse, err := c.useCase.CreatePlayer(req, form.File(r, "imagen", "image"))
	if err != nil {
		log.Error("usecase CreatePlayer failed", "error", err)
		c.sendError(w, r, err, player.CodeCreateFailed, "failed to create player")
		return
	}

	log.Info("player created", slog.Uint64("playerID", uint64(playerResponse.ID)))
	resp.SendSuccess(w, r, http.StatusCreated, playerResponse)
}

// GetPlayers
// @Summary List players
// @Tags players
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]player.PlayerResponse}
// @Router /players [get]
func (c *PlayerController) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := c.useCase.GetPlayers()
	if err != nil {
		c.log.Error("usecase GetPlayers failed", slog.String("op", "PlayerController.GetPlayers"), "error", err)
		c.sendError(w, r, err, "", "failed to retrieve players")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, players)
}

// CountPlayers
// @Summary Count players
// @Tags players
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=response.CountData}
// @Router /players/count [get]
func (c *PlayerController) CountPlayers(w http.ResponseWriter, r *http.Request) {
	count, err := c.useCase.CountPlayers()
	if err != nil {
		c.sendError(w, r, err, "", "failed to count players")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, resp.CountData{Count: count})
}

// GetPlayersWithDetails
// @Summary List players with team and series, newest first
// @Tags players
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]player.PlayerResponse}
// @Router /players/with-details [get]
func (c *PlayerController) GetPlayersWithDetails(w http.ResponseWriter, r *http.Request) {
	players, err := c.useCase.GetPlayersWithDetails()
	if err != nil {
		c.sendError(w, r, err, "", "failed to retrieve players")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, players)
}

// GetPlayer
// @Summary Get a player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} response.SuccessResponse{data=player.PlayerResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /players/{id} [get]
func (c *PlayerController) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	playerResponse, err := c.useCase.GetPlayer(playerID)
	if err != nil {
		c.sendError(w, r, err, "", "failed to retrieve player")
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, playerResponse)
}

// UpdatePlayer
// @Summary Partially update a player
// @Tags players
// @Description Only present fields are changed. Empty values clear optional fields. Numeric text is coerced.
// @Accept mpfd,json
// @Produce json
// @Param id path int true "Player ID"
// @Param imagen formData file false "New player image"
// @Success 200 {object} response.SuccessResponse{data=player.PlayerResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "ERR_002"
// @Router /players/{id} [patch]
func (c *PlayerController) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	op := "PlayerController.UpdatePlayer"
	log := c.log.With(slog.String("op", op))

	playerID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	log = log.With(slog.Uint64("playerID", uint64(playerID)))

	values, err := form.DecodeLimited(w, r, c.bodyLimit())
	if err != nil {
		status, msg := form.ErrorStatus(err)
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, status, msg)
		return
	}

	req, err := newUpdatePlayerRequest(values)
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed for UpdatePlayerRequest", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	playerResponse, err := c.useCase.UpdatePlayer(playerID, req, form.File(r, "imagen", "image"))
	if err != nil {
		log.Error("usecase UpdatePlayer failed", "error", err)
		c.sendError(w, r, err, player.CodeUpdateFailed, "failed to update player")
		return
	}

	log.Info("player updated")
	resp.SendSuccess(w, r, http.StatusOK, playerResponse)
}

// UpdatePlayerImage
// @Summary Replace a player's image
// @Tags players
// @Accept mpfd
// @Produce json
// @Param id path int true "Player ID"
// @Param imagen formData file true "Player image"
// @Success 200 {object} response.SuccessResponse{data=player.PlayerResponse}
// @Failure 400 {object} response.ErrorResponse "ERR_004"
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse "ERR_003"
// @Router /players/{id}/imagen [patch]
func (c *PlayerController) UpdatePlayerImage(w http.ResponseWriter, r *http.Request) {
	op := "PlayerController.UpdatePlayerImage"
	log := c.log.With(slog.String("op", op))

	playerID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	log = log.With(slog.Uint64("playerID", uint64(playerID)))

	if _, err := form.DecodeLimited(w, r, c.bodyLimit()); err != nil {
		status, msg := form.ErrorStatus(err)
		resp.SendError(w, r, status, msg)
		return
	}

	playerResponse, err := c.useCase.UpdatePlayerImage(playerID, form.File(r, "imagen", "image"))
	if err != nil {
		log.Warn("usecase UpdatePlayerImage failed", "error", err)
		c.sendError(w, r, err, player.CodeImageUpdateFailed, "failed to update player image")
		return
	}

	log.Info("player image updated")
	resp.SendSuccess(w, r, http.StatusOK, playerResponse)
}

// DeletePlayer
// @Summary Delete a player
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} response.SuccessResponse{data=player.PlayerResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /players/{id} [delete]
func (c *PlayerController) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	op := "PlayerController.DeletePlayer"
	log := c.log.With(slog.String("op", op))

	playerID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	deleted, err := c.useCase.DeletePlayer(playerID)
	if err != nil {
		log.Warn("usecase DeletePlayer failed", "error", err, "playerID", playerID)
		c.sendError(w, r, err, "", "failed to delete player")
		return
	}

	log.Info("player deleted", slog.Uint64("playerID", uint64(playerID)))
	resp.SendSuccess(w, r, http.StatusOK, deleted)
}
