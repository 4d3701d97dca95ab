package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/services"
	appErrors "github.com/dmaia/taskboard/pkg/errors"
	"github.com/dmaia/taskboard/pkg/response"
)

// TeamHandler exposes team CRUD endpoints.
type TeamHandler struct {
	service *services.TeamService
}

// NewTeamHandler constructs a team handler.
func NewTeamHandler(db *gorm.DB) (*TeamHandler, error) {
	service, err := services.NewTeamService(db)
	if err != nil {
		return nil, err
	}
	return &TeamHandler{service: service}, nil
}

// Create registers a new team, optionally with initial members.
func (h *TeamHandler) Create(c *gin.Context) {
	var payload struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		MemberIDs   []uint `json:"memberIds"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	team, err := h.service.Create(requestContext(c), services.CreateTeamInput{
		Name:        payload.Name,
		Description: payload.Description,
		MemberIDs:   payload.MemberIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Team created successfully", team)
}

// List returns every team with members expanded.
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.service.GetAll(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Teams fetched successfully", teams)
}

// Get returns a single team with members and projects.
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	team, err := h.service.GetByID(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Team fetched successfully", team)
}

// Update applies a partial update. A non-empty memberIds list replaces the
// entire membership set.
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var payload struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		MemberIDs   []uint  `json:"memberIds"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}
	if payload.Name == nil && payload.Description == nil && len(payload.MemberIDs) == 0 {
		response.Error(c, appErrors.NewBadRequest("at least one field must be provided"))
		return
	}

	team, err := h.service.Update(requestContext(c), id, services.UpdateTeamInput{
		Name:        payload.Name,
		Description: payload.Description,
		MemberIDs:   payload.MemberIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Team updated successfully", team)
}

// Delete removes a team and its memberships.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Team deleted successfully", nil)
}
