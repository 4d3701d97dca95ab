package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/services"
	"github.com/dmaia/taskboard/pkg/response"
)

// MemberHandler exposes team membership endpoints.
type MemberHandler struct {
	service *services.TeamMemberService
}

// NewMemberHandler constructs a membership handler.
func NewMemberHandler(db *gorm.DB) (*MemberHandler, error) {
	service, err := services.NewTeamMemberService(db)
	if err != nil {
		return nil, err
	}
	return &MemberHandler{service: service}, nil
}

// Add attaches a user to a team.
func (h *MemberHandler) Add(c *gin.Context) {
	var payload struct {
		UserID uint   `json:"userId" validate:"required"`
		TeamID uint   `json:"teamId" validate:"required"`
		Role   string `json:"role" validate:"omitempty,oneof=member admin"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	member, err := h.service.AddMember(requestContext(c), services.AddMemberInput{
		UserID: payload.UserID,
		TeamID: payload.TeamID,
		Role:   payload.Role,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Member added successfully", member)
}

// ListByTeam returns a team's memberships with users expanded.
func (h *MemberHandler) ListByTeam(c *gin.Context) {
	teamID, ok := uintParam(c, "teamId")
	if !ok {
		return
	}

	members, err := h.service.GetMembersByTeam(requestContext(c), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Members fetched successfully", members)
}

// UpdateRole changes the role of an existing membership.
func (h *MemberHandler) UpdateRole(c *gin.Context) {
	var payload struct {
		UserID uint   `json:"userId" validate:"required"`
		TeamID uint   `json:"teamId" validate:"required"`
		Role   string `json:"role" validate:"required,oneof=member admin"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	member, err := h.service.UpdateRole(requestContext(c), payload.UserID, payload.TeamID, payload.Role)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Member role updated successfully", member)
}

// Remove detaches a user from a team.
func (h *MemberHandler) Remove(c *gin.Context) {
	var payload struct {
		UserID uint `json:"userId" validate:"required"`
		TeamID uint `json:"teamId" validate:"required"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	if err := h.service.RemoveMember(requestContext(c), payload.UserID, payload.TeamID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Member removed successfully", nil)
}
