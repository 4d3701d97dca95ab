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

// ErrCommentNotFound indicates the requested comment does not exist.
var ErrCommentNotFound = apperrors.New("COMMENT_NOT_FOUND", "Comment not found", http.StatusNotFound)

// CreateCommentInput captures a new comment on a task.
type CreateCommentInput struct {
	Content  string
	TaskID   uint
	AuthorID uint
}

// CommentService handles task comments.
type CommentService struct {
	db *gorm.DB
}

// NewCommentService constructs a CommentService instance.
func NewCommentService(db *gorm.DB) (*CommentService, error) {
	if db == nil {
		return nil, errors.New("comment service: db is required")
	}
	return &CommentService{db: db}, nil
}

// Create attaches a comment to a task after verifying task and author exist.
func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	ctx = ensureContext(ctx)

	content := strings.TrimSpace(input.Content)
	if content == "" || input.TaskID == 0 || input.AuthorID == 0 {
		return nil, apperrors.NewBadRequest("content, taskId and authorId are required")
	}

	var taskCount int64
	if err := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", input.TaskID).Count(&taskCount).Error; err != nil {
		return nil, fmt.Errorf("comment service: check task: %w", err)
	}
	if taskCount == 0 {
		return nil, ErrTaskNotFound
	}

	var authorCount int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", input.AuthorID).Count(&authorCount).Error; err != nil {
		return nil, fmt.Errorf("comment service: check author: %w", err)
	}
	if authorCount == 0 {
		return nil, ErrUserNotFound
	}

	comment := &models.Comment{
		Content:  content,
		TaskID:   input.TaskID,
		AuthorID: input.AuthorID,
	}

	if err := s.db.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, fmt.Errorf("comment service: create comment: %w", err)
	}

	return comment, nil
}

// ListByTask returns a task's comments in arrival order.
func (s *CommentService) ListByTask(ctx context.Context, taskID uint) ([]models.Comment, error) {
	ctx = ensureContext(ctx)

	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("task_id = ?", taskID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("comment service: list comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment.
func (s *CommentService) Delete(ctx context.Context, id uint) error {
	ctx = ensureContext(ctx)

	var comment models.Comment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCommentNotFound
	}
	if err != nil {
		return fmt.Errorf("comment service: load comment: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(&comment).Error; err != nil {
		return fmt.Errorf("comment service: delete comment: %w", err)
	}
	return nil
}
