package controller

import (
	"log/slog"
	"net/http"

	"league/internal/modules/player"
	"league/pkg/lib/form"
	resp "league/pkg/lib/response"
)

// ImportPlayers
// @Summary Bulk import players from a spreadsheet
// @Tags players
// @Description Reads the first sheet of an .xlsx file. Required columns: Name, Birthdate, Height, Weight, Main position, Nationality, Rarity.
// @Description Optional columns: Secondary position 1, Secondary position 2. If any row is invalid nothing is imported.
// @Accept mpfd
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx)"
// @Success 201 {object} response.SuccessResponse{data=player.ImportResponse}
// @Failure 400 {object} response.ErrorResponse
// @Router /players/import-excel [post]
func (c *PlayerController) ImportPlayers(w http.ResponseWriter, r *http.Request) {
	op := "PlayerController.ImportPlayers"
	log := c.log.With(slog.String("op", op))

	if _, err := form.DecodeLimited(w, r, c.cfg.MaxImportSizeBytes); err != nil {
		status, msg := form.ErrorStatus(err)
		log.Warn("failed to decode import form", "error", err)
		resp.SendError(w, r, status, msg)
		return
	}

	fileHeader := form.File(r, "file")
	if fileHeader == nil {
		resp.SendError(w, r, http.StatusBadRequest, "no file was provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error("failed to open uploaded spreadsheet", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	defer file.Close()

	count, err := c.useCase.ImportPlayers(file)
	if err != nil {
		log.Warn("usecase ImportPlayers failed", "error", err)
		c.sendError(w, r, err, "", "failed to import players")
		return
	}

	log.Info("players imported", slog.Int("count", count), slog.String("filename", fileHeader.Filename))
	resp.SendSuccess(w, r, http.StatusCreated, player.ImportResponse{Count: count})
}
