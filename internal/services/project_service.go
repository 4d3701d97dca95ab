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

// ErrProjectNotFound indicates the requested project does not exist.
var ErrProjectNotFound = apperrors.New("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)

// CreateProjectInput captures new project data. TeamID and OwnerID must
// reference existing rows; the service checks before inserting.
type CreateProjectInput struct {
	Name        string
	Description string
	TeamID      uint
	OwnerID     uint
}

// UpdateProjectInput describes mutable project fields.
type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// ProjectService handles project lifecycle.
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService constructs a ProjectService instance.
func NewProjectService(db *gorm.DB) (*ProjectService, error) {
	if db == nil {
		return nil, errors.New("project service: db is required")
	}
	return &ProjectService{db: db}, nil
}

// Create registers a new project after verifying its team and owner exist.
// Nothing is inserted when either reference is missing.
func (s *ProjectService) Create(ctx context.Context, input CreateProjectInput) (*models.Project, error) {
	ctx = ensureContext(ctx)

	name := strings.TrimSpace(input.Name)
	if name == "" || input.TeamID == 0 || input.OwnerID == 0 {
		return nil, apperrors.NewBadRequest("name, teamId and ownerId are required")
	}

	var teamCount int64
	if err := s.db.WithContext(ctx).Model(&models.Team{}).
		Where("id = ?", input.TeamID).Count(&teamCount).Error; err != nil {
		return nil, fmt.Errorf("project service: check team: %w", err)
	}
	if teamCount == 0 {
		return nil, ErrTeamNotFound
	}

	var ownerCount int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", input.OwnerID).Count(&ownerCount).Error; err != nil {
		return nil, fmt.Errorf("project service: check owner: %w", err)
	}
	if ownerCount == 0 {
		return nil, apperrors.NewNotFound("Owner user not found")
	}

	project := &models.Project{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		TeamID:      input.TeamID,
		OwnerID:     input.OwnerID,
	}

	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, fmt.Errorf("project service: create project: %w", err)
	}

	return project, nil
}

// GetAll returns every project with its team expanded down to member users.
// An empty result is not an error.
func (s *ProjectService) GetAll(ctx context.Context) ([]models.Project, error) {
	ctx = ensureContext(ctx)

	var projects []models.Project
	err := s.db.WithContext(ctx).
		Preload("Team.Members.User").
		Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("project service: list projects: %w", err)
	}
	return projects, nil
}

// GetByID loads a project with team (members expanded), owner and tasks.
func (s *ProjectService) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	ctx = ensureContext(ctx)

	var project models.Project
	err := s.db.WithContext(ctx).
		Preload("Team.Members.User").
		Preload("Owner").
		Preload("Tasks").
		First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("project service: load project: %w", err)
	}
	return &project, nil
}

// Update modifies project metadata.
func (s *ProjectService) Update(ctx context.Context, id uint, input UpdateProjectInput) (*models.Project, error) {
	ctx = ensureContext(ctx)

	var project models.Project
	err := s.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("project service: load project: %w", err)
	}

	updates := map[string]any{}
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			updates["name"] = name
		}
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}

	if len(updates) == 0 {
		return &project, nil
	}

	if err := s.db.WithContext(ctx).Model(&project).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("project service: update project: %w", err)
	}

	if err := s.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, fmt.Errorf("project service: reload project: %w", err)
	}

	return &project, nil
}

// Delete removes a project and, through cascading constraints, its tasks.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	ctx = ensureContext(ctx)

	var project models.Project
	err := s.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProjectNotFound
	}
	if err != nil {
		return fmt.Errorf("project service: load project: %w", err)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).
			Delete(&models.Task{}).Error; err != nil {
			return fmt.Errorf("project service: delete tasks: %w", err)
		}
		if err := tx.Delete(&project).Error; err != nil {
			return fmt.Errorf("project service: delete project: %w", err)
		}
		return nil
	})
}
