package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/services"
	appErrors "github.com/dmaia/taskboard/pkg/errors"
	"github.com/dmaia/taskboard/pkg/response"
)

// UserHandler exposes user CRUD endpoints.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler constructs a user handler.
func NewUserHandler(db *gorm.DB) (*UserHandler, error) {
	service, err := services.NewUserService(db)
	if err != nil {
		return nil, err
	}
	return &UserHandler{service: service}, nil
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var payload struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	user, err := h.service.Create(requestContext(c), services.CreateUserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "User created successfully", user)
}

// List returns every registered user.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.GetAll(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Users fetched successfully", users)
}

// Get returns a single user.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User fetched successfully", user)
}

// Update applies a partial update to a user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var payload struct {
		Name  *string `json:"name"`
		Email *string `json:"email" validate:"omitempty,email"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}
	if payload.Name == nil && payload.Email == nil {
		response.Error(c, appErrors.NewBadRequest("at least one field must be provided"))
		return
	}

	user, err := h.service.Update(requestContext(c), id, services.UpdateUserInput{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User updated successfully", user)
}

// Delete removes a user.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "User deleted successfully", nil)
}
