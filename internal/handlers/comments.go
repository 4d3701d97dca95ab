package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/services"
	"github.com/dmaia/taskboard/pkg/response"
)

// CommentHandler exposes task comment endpoints.
type CommentHandler struct {
	service *services.CommentService
}

// NewCommentHandler constructs a comment handler.
func NewCommentHandler(db *gorm.DB) (*CommentHandler, error) {
	service, err := services.NewCommentService(db)
	if err != nil {
		return nil, err
	}
	return &CommentHandler{service: service}, nil
}

// Create attaches a comment to a task.
func (h *CommentHandler) Create(c *gin.Context) {
	var payload struct {
		Content  string `json:"content" validate:"required"`
		TaskID   uint   `json:"taskId" validate:"required"`
		AuthorID uint   `json:"authorId" validate:"required"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	comment, err := h.service.Create(requestContext(c), services.CreateCommentInput{
		Content:  payload.Content,
		TaskID:   payload.TaskID,
		AuthorID: payload.AuthorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Comment created successfully", comment)
}

// ListByTask returns a task's comments with authors expanded.
func (h *CommentHandler) ListByTask(c *gin.Context) {
	taskID, ok := uintParam(c, "taskId")
	if !ok {
		return
	}

	comments, err := h.service.ListByTask(requestContext(c), taskID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Comments fetched successfully", comments)
}

// Delete removes a comment.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Comment deleted successfully", nil)
}
