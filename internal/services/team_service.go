package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/models"
	apperrors "github.com/dmaia/taskboard/pkg/errors"
)

var (
	// ErrTeamNotFound indicates the requested team does not exist.
	ErrTeamNotFound = apperrors.New("TEAM_NOT_FOUND", "Team not found", http.StatusNotFound)
	// ErrTeamNameTaken signals a uniqueness violation on the team name. Modeled as 400.
	ErrTeamNameTaken = apperrors.NewBadRequest("A team with this name already exists")
)

// CreateTeamInput captures new team metadata. MemberIDs, when present,
// become memberships with the default member role.
type CreateTeamInput struct {
	Name        string
	Description string
	MemberIDs   []uint
}

// UpdateTeamInput describes mutable team fields. A non-empty MemberIDs list
// replaces the whole membership set; nil or empty leaves it unchanged.
type UpdateTeamInput struct {
	Name        *string
	Description *string
	MemberIDs   []uint
}

// TeamService handles team lifecycle and bulk membership replacement.
type TeamService struct {
	db *gorm.DB
}

// NewTeamService constructs a TeamService instance.
func NewTeamService(db *gorm.DB) (*TeamService, error) {
	if db == nil {
		return nil, errors.New("team service: db is required")
	}
	return &TeamService{db: db}, nil
}

// Create registers a new team, optionally with an initial member list.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	ctx = ensureContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewBadRequest("team name is required")
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&models.Team{}).
		Where("name = ?", name).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("team service: check name: %w", err)
	}
	if existing > 0 {
		return nil, ErrTeamNameTaken
	}

	memberIDs := normaliseIDs(input.MemberIDs)

	team := &models.Team{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(memberIDs) > 0 {
			if err := requireUsersExist(tx, memberIDs); err != nil {
				return err
			}
		}

		if err := tx.Create(team).Error; err != nil {
			if isUniqueConstraintError(err) {
				return ErrTeamNameTaken
			}
			return fmt.Errorf("team service: create team: %w", err)
		}

		for _, userID := range memberIDs {
			member := models.TeamMember{
				UserID: userID,
				TeamID: team.ID,
				Role:   models.RoleMember,
			}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("team service: create membership: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, team.ID)
}

// GetAll returns every team with members expanded to users.
func (s *TeamService) GetAll(ctx context.Context) ([]models.Team, error) {
	ctx = ensureContext(ctx)

	var teams []models.Team
	err := s.db.WithContext(ctx).
		Preload("Members.User").
		Order("id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, fmt.Errorf("team service: list teams: %w", err)
	}
	if len(teams) == 0 {
		return nil, apperrors.NewNotFound("No teams found")
	}
	return teams, nil
}

// GetByID loads a team with members (expanded to users) and projects.
func (s *TeamService) GetByID(ctx context.Context, id uint) (*models.Team, error) {
	ctx = ensureContext(ctx)

	var team models.Team
	err := s.db.WithContext(ctx).
		Preload("Members.User").
		Preload("Projects").
		First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("team service: load team: %w", err)
	}
	return &team, nil
}

// Update modifies team metadata. A non-empty MemberIDs list replaces the
// entire membership set (delete then recreate); members omitted from the
// list are removed. Nil or empty lists leave membership untouched.
func (s *TeamService) Update(ctx context.Context, id uint, input UpdateTeamInput) (*models.Team, error) {
	ctx = ensureContext(ctx)

	var team models.Team
	err := s.db.WithContext(ctx).First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("team service: load team: %w", err)
	}

	updates := map[string]any{}
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" && name != team.Name {
			updates["name"] = name
		}
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}

	memberIDs := normaliseIDs(input.MemberIDs)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&team).Updates(updates).Error; err != nil {
				if isUniqueConstraintError(err) {
					return ErrTeamNameTaken
				}
				return fmt.Errorf("team service: update team: %w", err)
			}
		}

		if len(memberIDs) > 0 {
			if err := requireUsersExist(tx, memberIDs); err != nil {
				return err
			}

			if err := tx.Where("team_id = ?", team.ID).
				Delete(&models.TeamMember{}).Error; err != nil {
				return fmt.Errorf("team service: clear members: %w", err)
			}

			for _, userID := range memberIDs {
				member := models.TeamMember{
					UserID: userID,
					TeamID: team.ID,
					Role:   models.RoleMember,
				}
				if err := tx.Create(&member).Error; err != nil {
					return fmt.Errorf("team service: recreate membership: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, team.ID)
}

// Delete removes a team and its memberships.
func (s *TeamService) Delete(ctx context.Context, id uint) error {
	ctx = ensureContext(ctx)

	var team models.Team
	err := s.db.WithContext(ctx).First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTeamNotFound
	}
	if err != nil {
		return fmt.Errorf("team service: load team: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.ID).
			Delete(&models.TeamMember{}).Error; err != nil {
			return fmt.Errorf("team service: delete memberships: %w", err)
		}
		if err := tx.Delete(&team).Error; err != nil {
			return fmt.Errorf("team service: delete team: %w", err)
		}
		return nil
	})
}

// requireUsersExist verifies every id references a stored user.
func requireUsersExist(tx *gorm.DB, ids []uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return fmt.Errorf("team service: check users: %w", err)
	}
	if count != int64(len(ids)) {
		return apperrors.NewNotFound("One or more users were not found")
	}
	return nil
}
