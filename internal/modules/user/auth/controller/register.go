package controller

import (
	"log/slog"
	"net/http"

	"league/internal/modules/user/auth"
	resp "league/pkg/lib/response"

	"github.com/go-chi/render"
)

// Register
// @Summary User registration
// @Tags auth
// @Description Creates a user (role "user" unless given) and returns an access token.
// @Accept json
// @Produce json
// @Param user body auth.RegisterRequest true "Registration details"
// @Success 201 {object} response.SuccessResponse{data=auth.AuthResponse}
// @Failure 400 {object} response.ErrorResponse "Validation error or invalid request payload"
// @Failure 409 {object} response.ErrorResponse "User with this email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "AuthController.Register"))

	var req auth.RegisterRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "failed to decode request")
		return
	}

	if err := c.validate.Struct(req); err != nil {
		resp.SendValidationError(w, r, err)
		return
	}

	authResponse, err := c.uc.Register(req)
	if err != nil {
		log.Info("registration failed", "error", err)
		c.sendError(w, r, err)
		return
	}

	log.Info("user registered", slog.Uint64("userID", uint64(authResponse.User.ID)))
	resp.SendSuccess(w, r, http.StatusCreated, authResponse)
}
