package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/services"
	appErrors "github.com/dmaia/taskboard/pkg/errors"
	"github.com/dmaia/taskboard/pkg/response"
)

// ProjectHandler exposes project CRUD endpoints.
type ProjectHandler struct {
	service *services.ProjectService
}

// NewProjectHandler constructs a project handler.
func NewProjectHandler(db *gorm.DB) (*ProjectHandler, error) {
	service, err := services.NewProjectService(db)
	if err != nil {
		return nil, err
	}
	return &ProjectHandler{service: service}, nil
}

// Create registers a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var payload struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		TeamID      uint   `json:"teamId" validate:"required"`
		OwnerID     uint   `json:"ownerId" validate:"required"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	project, err := h.service.Create(requestContext(c), services.CreateProjectInput{
		Name:        payload.Name,
		Description: payload.Description,
		TeamID:      payload.TeamID,
		OwnerID:     payload.OwnerID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Project created successfully", project)
}

// List returns every project with its team expanded.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.service.GetAll(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Projects fetched successfully", projects)
}

// Get returns a single project with team, owner and tasks.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	project, err := h.service.GetByID(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Project fetched successfully", project)
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var payload struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}
	if payload.Name == nil && payload.Description == nil {
		response.Error(c, appErrors.NewBadRequest("at least one field must be provided"))
		return
	}

	project, err := h.service.Update(requestContext(c), id, services.UpdateProjectInput{
		Name:        payload.Name,
		Description: payload.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Project updated successfully", project)
}

// Delete removes a project and its tasks.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Project deleted successfully", nil)
}
