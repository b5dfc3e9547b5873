package controller

import (
	"log/slog"
	"net/http"

	"league/internal/modules/user/auth"
	resp "league/pkg/lib/response"

	"github.com/go-chi/render"
)

// Login
// @Summary User login
// @Tags auth
// @Description Checks email and password and returns an access token with the user.
// @Accept json
// @Produce json
// @Param user body auth.LoginRequest true "Credentials"
// @Success 200 {object} response.SuccessResponse{data=auth.AuthResponse}
// @Failure 400 {object} response.ErrorResponse "Invalid request payload or validation error"
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "AuthController.Login"))

	var req auth.LoginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "failed to decode request")
		return
	}

	if err := c.validate.Struct(req); err != nil {
		resp.SendValidationError(w, r, err)
		return
	}

	authResponse, err := c.uc.Login(req.Email, req.Password)
	if err != nil {
		c.sendError(w, r, err)
		return
	}

	log.Info("user logged in", slog.Uint64("userID", uint64(authResponse.User.ID)))
	resp.SendSuccess(w, r, http.StatusOK, authResponse)
}
