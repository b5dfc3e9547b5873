package controller

import (
	"log/slog"
	"net/http"

	"league/pkg/lib/form"
	resp "league/pkg/lib/response"
	authmw "league/pkg/middleware/jwt"
)

// Profile
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=user.UserResponse}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/profile [post]
func (c *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := authmw.UserIDFromContext(r.Context())
	if err != nil {
		resp.SendError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := c.uc.Profile(userID)
	if err != nil {
		c.sendError(w, r, err)
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, profile)
}

// ProfileImage
// @Summary Replace the current user's image
// @Tags auth
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param imagen formData file true "Profile image"
// @Success 200 {object} response.SuccessResponse{data=user.UserResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/profile/image [post]
func (c *AuthController) ProfileImage(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "AuthController.ProfileImage"))

	userID, err := authmw.UserIDFromContext(r.Context())
	if err != nil {
		resp.SendError(w, r, http.StatusUnauthorized, "unauthorized")
		return
	}

	if _, err := form.DecodeLimited(w, r, c.maxBody); err != nil {
		status, msg := form.ErrorStatus(err)
		resp.SendError(w, r, status, msg)
		return
	}

	profile, err := c.uc.UpdateProfileImage(userID, form.File(r, "imagen", "image"))
	if err != nil {
		log.Warn("usecase UpdateProfileImage failed", "error", err, "userID", userID)
		c.sendError(w, r, err)
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, profile)
}
