package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/models"
	apperrors "github.com/dmaia/taskboard/pkg/errors"
)

var (
	// ErrMemberNotFound indicates the (user, team) membership does not exist.
	ErrMemberNotFound = apperrors.New("MEMBER_NOT_FOUND", "Member not found in this team", http.StatusNotFound)
	// ErrMemberExists signals the user is already in the team. Modeled as 400.
	ErrMemberExists = apperrors.NewBadRequest("This user is already a member of the team")
)

// AddMemberInput captures a new membership.
type AddMemberInput struct {
	UserID uint
	TeamID uint
	Role   string
}

// TeamMemberService manages individual team memberships.
type TeamMemberService struct {
	db *gorm.DB
}

// NewTeamMemberService constructs a TeamMemberService instance.
func NewTeamMemberService(db *gorm.DB) (*TeamMemberService, error) {
	if db == nil {
		return nil, errors.New("member service: db is required")
	}
	return &TeamMemberService{db: db}, nil
}

// AddMember attaches a user to a team. The (user, team) pair is unique.
func (s *TeamMemberService) AddMember(ctx context.Context, input AddMemberInput) (*models.TeamMember, error) {
	ctx = ensureContext(ctx)

	if input.UserID == 0 || input.TeamID == 0 {
		return nil, apperrors.NewBadRequest("userId and teamId are required")
	}

	role := input.Role
	if role == "" {
		role = models.RoleMember
	}
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequest("role must be member or admin")
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.TeamMember{}).
		Where("user_id = ? AND team_id = ?", input.UserID, input.TeamID).
		Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("member service: check membership: %w", err)
	}
	if existing > 0 {
		return nil, ErrMemberExists
	}

	var userCount, teamCount int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", input.UserID).Count(&userCount).Error; err != nil {
		return nil, fmt.Errorf("member service: check user: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&models.Team{}).
		Where("id = ?", input.TeamID).Count(&teamCount).Error; err != nil {
		return nil, fmt.Errorf("member service: check team: %w", err)
	}
	if userCount == 0 || teamCount == 0 {
		return nil, apperrors.NewNotFound("User or team not found")
	}

	member := &models.TeamMember{
		UserID: input.UserID,
		TeamID: input.TeamID,
		Role:   role,
	}

	if err := s.db.WithContext(ctx).Create(member).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("member service: create membership: %w", err)
	}

	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Team").
		First(member, member.ID).Error
	if err != nil {
		return nil, fmt.Errorf("member service: reload membership: %w", err)
	}

	return member, nil
}

// GetMembersByTeam lists the memberships of a team with users expanded.
func (s *TeamMemberService) GetMembersByTeam(ctx context.Context, teamID uint) ([]models.TeamMember, error) {
	ctx = ensureContext(ctx)

	var members []models.TeamMember
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("team_id = ?", teamID).
		Order("id ASC").
		Find(&members).Error
	if err != nil {
		return nil, fmt.Errorf("member service: list members: %w", err)
	}
	if len(members) == 0 {
		return nil, apperrors.NewNotFound("No members found for this team")
	}
	return members, nil
}

// UpdateRole changes the role attached to an existing membership.
func (s *TeamMemberService) UpdateRole(ctx context.Context, userID, teamID uint, role string) (*models.TeamMember, error) {
	ctx = ensureContext(ctx)

	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequest("role must be member or admin")
	}

	var member models.TeamMember
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("member service: load membership: %w", err)
	}

	if err := s.db.WithContext(ctx).Model(&member).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("member service: update role: %w", err)
	}

	return &member, nil
}

// RemoveMember detaches a user from a team.
func (s *TeamMemberService) RemoveMember(ctx context.Context, userID, teamID uint) error {
	ctx = ensureContext(ctx)

	var member models.TeamMember
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	if err != nil {
		return fmt.Errorf("member service: load membership: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&member).Error; err != nil {
		return fmt.Errorf("member service: delete membership: %w", err)
	}
	return nil
}
