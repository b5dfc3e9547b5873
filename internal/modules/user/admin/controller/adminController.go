package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"league/internal/modules/user"
	"league/internal/modules/user/admin"
	"league/pkg/lib/form"
	"league/pkg/lib/params"
	resp "league/pkg/lib/response"
	"league/pkg/lib/validate"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const maxBody = 1 << 20

type AdminController struct {
	useCase  admin.UseCase
	log      *slog.Logger
	validate *validator.Validate
}

func NewAdminController(useCase admin.UseCase, log *slog.Logger) *AdminController {
	return &AdminController{
		useCase:  useCase,
		log:      log,
		validate: validate.New(),
	}
}

func (c *AdminController) sendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		resp.SendError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrEmailExists):
		resp.SendError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrRequiredFieldEmpty):
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
	default:
		resp.SendError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

// GetUsers
// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]user.UserResponse}
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (c *AdminController) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.useCase.GetUsers()
	if err != nil {
		c.sendError(w, r, err)
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, users)
}

// GetUser
// @Summary Get a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.SuccessResponse{data=user.UserResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [get]
func (c *AdminController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	u, err := c.useCase.GetUser(userID)
	if err != nil {
		c.sendError(w, r, err)
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, u)
}

// CreateUser
// @Summary Create a user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param user body admin.CreateUserRequest true "New user"
// @Success 201 {object} response.SuccessResponse{data=user.UserResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users [post]
func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "AdminController.CreateUser"))

	var req admin.CreateUserRequest
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBody), &req); err != nil {
		log.Warn("failed to decode request body", "error", err)
		resp.SendError(w, r, http.StatusBadRequest, "failed to decode request")
		return
	}

	if err := c.validate.Struct(req); err != nil {
		resp.SendValidationError(w, r, err)
		return
	}

	u, err := c.useCase.CreateUser(req)
	if err != nil {
		c.sendError(w, r, err)
		return
	}
	resp.SendSuccess(w, r, http.StatusCreated, u)
}

// UpdateUser
// @Summary Partially update a user
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.SuccessResponse{data=user.UserResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users/{id} [patch]
func (c *AdminController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := c.log.With(slog.String("op", "AdminController.UpdateUser"))

	userID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	values, err := form.DecodeLimited(w, r, maxBody)
	if err != nil {
		status, msg := form.ErrorStatus(err)
		resp.SendError(w, r, status, msg)
		return
	}

	var req admin.UpdateUserRequest
	if req.Email, err = values.RawString("email"); err == nil {
		if req.Name, err = values.String("name"); err == nil {
			req.Role, err = values.String("role")
		}
	}
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.validate.Struct(req); err != nil {
		log.Warn("validation failed for UpdateUserRequest", "error", err)
		resp.SendValidationError(w, r, err)
		return
	}

	u, err := c.useCase.UpdateUser(userID, req)
	if err != nil {
		c.sendError(w, r, err)
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, u)
}

// DeleteUser
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.SuccessResponse{data=response.MessageData}
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{id} [delete]
func (c *AdminController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := params.ID(r, "id")
	if err != nil {
		resp.SendError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := c.useCase.DeleteUser(userID); err != nil {
		c.sendError(w, r, err)
		return
	}
	resp.SendSuccess(w, r, http.StatusOK, resp.MessageData{Message: "user deleted successfully"})
}
