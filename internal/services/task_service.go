package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/models"
	apperrors "github.com/dmaia/taskboard/pkg/errors"
	"github.com/dmaia/taskboard/pkg/metrics"
)

var (
	// ErrTaskNotFound indicates the requested task does not exist.
	ErrTaskNotFound = apperrors.New("TASK_NOT_FOUND", "Task not found", http.StatusNotFound)
	// ErrAssigneeNotFound indicates the assigned user does not exist.
	ErrAssigneeNotFound = apperrors.New("ASSIGNEE_NOT_FOUND", "Assigned user not found", http.StatusNotFound)
)

// CreateTaskInput captures new task data. Status defaults to todo and
// priority to medium when left empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     *time.Time
	ProjectID   uint
	AssignedID  *uint
}

// UpdateTaskInput describes mutable task fields. Nil fields are untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	DueDate     *time.Time
	AssignedID  *uint
}

// TaskService handles task lifecycle and board status moves.
type TaskService struct {
	db *gorm.DB
}

// NewTaskService constructs a TaskService instance.
func NewTaskService(db *gorm.DB) (*TaskService, error) {
	if db == nil {
		return nil, errors.New("task service: db is required")
	}
	return &TaskService{db: db}, nil
}

// Create registers a new task after verifying its project and, when set, its
// assignee exist.
func (s *TaskService) Create(ctx context.Context, input CreateTaskInput) (*models.Task, error) {
	ctx = ensureContext(ctx)

	title := strings.TrimSpace(input.Title)
	if title == "" || input.ProjectID == 0 {
		return nil, apperrors.NewBadRequest("title and projectId are required")
	}

	status := input.Status
	if status == "" {
		status = models.StatusTodo
	}
	if !models.ValidStatus(status) {
		return nil, apperrors.NewBadRequest("status must be todo, doing or done")
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, apperrors.NewBadRequest("priority must be low, medium or high")
	}

	var projectCount int64
	if err := s.db.WithContext(ctx).Model(&models.Project{}).
		Where("id = ?", input.ProjectID).Count(&projectCount).Error; err != nil {
		return nil, fmt.Errorf("task service: check project: %w", err)
	}
	if projectCount == 0 {
		return nil, ErrProjectNotFound
	}

	if input.AssignedID != nil {
		var userCount int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", *input.AssignedID).Count(&userCount).Error; err != nil {
			return nil, fmt.Errorf("task service: check assignee: %w", err)
		}
		if userCount == 0 {
			return nil, ErrAssigneeNotFound
		}
	}

	task := &models.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		ProjectID:   input.ProjectID,
		AssignedID:  input.AssignedID,
	}

	if err := s.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("task service: create task: %w", err)
	}

	return task, nil
}

// GetAll returns every task with project, assignee and comments expanded.
func (s *TaskService) GetAll(ctx context.Context) ([]models.Task, error) {
	ctx = ensureContext(ctx)

	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Preload("Project").
		Preload("Assigned").
		Preload("Comments").
		Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("task service: list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, apperrors.NewNotFound("No tasks found")
	}
	return tasks, nil
}

// GetByID loads a single task with its relations.
func (s *TaskService) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	ctx = ensureContext(ctx)

	var task models.Task
	err := s.db.WithContext(ctx).
		Preload("Project").
		Preload("Assigned").
		Preload("Comments").
		First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("task service: load task: %w", err)
	}
	return &task, nil
}

// ListByProject returns a project's tasks ordered by arrival. This is the
// board's data source; an empty board is not an error.
func (s *TaskService) ListByProject(ctx context.Context, projectID uint) ([]models.Task, error) {
	ctx = ensureContext(ctx)

	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("task service: list project tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial field set to an existing task.
func (s *TaskService) Update(ctx context.Context, id uint, input UpdateTaskInput) (*models.Task, error) {
	ctx = ensureContext(ctx)

	var task models.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("task service: load task: %w", err)
	}

	updates := map[string]any{}
	if input.Title != nil {
		if title := strings.TrimSpace(*input.Title); title != "" {
			updates["title"] = title
		}
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Status != nil {
		if !models.ValidStatus(*input.Status) {
			return nil, apperrors.NewBadRequest("status must be todo, doing or done")
		}
		updates["status"] = *input.Status
	}
	if input.Priority != nil {
		if !models.ValidPriority(*input.Priority) {
			return nil, apperrors.NewBadRequest("priority must be low, medium or high")
		}
		updates["priority"] = *input.Priority
	}
	if input.DueDate != nil {
		updates["due_date"] = *input.DueDate
	}
	if input.AssignedID != nil {
		var userCount int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("id = ?", *input.AssignedID).Count(&userCount).Error; err != nil {
			return nil, fmt.Errorf("task service: check assignee: %w", err)
		}
		if userCount == 0 {
			return nil, ErrAssigneeNotFound
		}
		updates["assigned_id"] = *input.AssignedID
	}

	if len(updates) == 0 {
		return &task, nil
	}

	if err := s.db.WithContext(ctx).Model(&task).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("task service: update task: %w", err)
	}

	if err := s.db.WithContext(ctx).First(&task, id).Error; err != nil {
		return nil, fmt.Errorf("task service: reload task: %w", err)
	}

	return &task, nil
}

// MoveTask changes only a task's status. Any status may move to any other;
// moving to the current status is a no-op update, not an error.
func (s *TaskService) MoveTask(ctx context.Context, id uint, status string) (*models.Task, error) {
	ctx = ensureContext(ctx)

	if !models.ValidStatus(status) {
		return nil, apperrors.NewBadRequest("status must be todo, doing or done")
	}

	var task models.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("task service: load task: %w", err)
	}

	if task.Status != status {
		if err := s.db.WithContext(ctx).Model(&task).Update("status", status).Error; err != nil {
			return nil, fmt.Errorf("task service: move task: %w", err)
		}
	}

	metrics.TaskMoves.WithLabelValues(status).Inc()
	return &task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id uint) error {
	ctx = ensureContext(ctx)

	var task models.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("task service: load task: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&task).Error; err != nil {
		return fmt.Errorf("task service: delete task: %w", err)
	}
	return nil
}
