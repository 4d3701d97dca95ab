package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dmaia/taskboard/internal/board"
	"github.com/dmaia/taskboard/internal/services"
	appErrors "github.com/dmaia/taskboard/pkg/errors"
	"github.com/dmaia/taskboard/pkg/response"
)

// TaskHandler exposes task CRUD endpoints and the board projection.
type TaskHandler struct {
	service *services.TaskService
}

// NewTaskHandler constructs a task handler.
func NewTaskHandler(db *gorm.DB) (*TaskHandler, error) {
	service, err := services.NewTaskService(db)
	if err != nil {
		return nil, err
	}
	return &TaskHandler{service: service}, nil
}

// Create registers a new task. Status defaults to todo, priority to medium.
func (h *TaskHandler) Create(c *gin.Context) {
	var payload struct {
		Title       string     `json:"title" validate:"required"`
		Description string     `json:"description"`
		Status      string     `json:"status" validate:"omitempty,oneof=todo doing done"`
		Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
		DueDate     *time.Time `json:"dueDate"`
		ProjectID   uint       `json:"projectId" validate:"required"`
		AssignedID  *uint      `json:"assignedId"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	task, err := h.service.Create(requestContext(c), services.CreateTaskInput{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      payload.Status,
		Priority:    payload.Priority,
		DueDate:     payload.DueDate,
		ProjectID:   payload.ProjectID,
		AssignedID:  payload.AssignedID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusCreated, "Task created successfully", task)
}

// List returns every task with its relations.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.service.GetAll(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Tasks fetched successfully", tasks)
}

// Get returns a single task.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	task, err := h.service.GetByID(requestContext(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Task fetched successfully", task)
}

// ListByProject returns a project's tasks in arrival order. With ?view=board
// the tasks come back grouped into the three status columns.
func (h *TaskHandler) ListByProject(c *gin.Context) {
	projectID, ok := uintParam(c, "projectId")
	if !ok {
		return
	}

	tasks, err := h.service.ListByProject(requestContext(c), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if c.Query("view") == "board" {
		response.OK(c, http.StatusOK, "Board fetched successfully", board.Partition(tasks))
		return
	}

	response.OK(c, http.StatusOK, "Tasks fetched successfully", tasks)
}

// Update applies a partial update to a task. A payload carrying only a status
// goes through the status-only move path.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var payload struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status" validate:"omitempty,oneof=todo doing done"`
		Priority    *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
		DueDate     *time.Time `json:"dueDate"`
		AssignedID  *uint      `json:"assignedId"`
	}

	if !bindAndValidate(c, &payload) {
		return
	}

	statusOnly := payload.Status != nil &&
		payload.Title == nil && payload.Description == nil &&
		payload.Priority == nil && payload.DueDate == nil && payload.AssignedID == nil

	if statusOnly {
		task, err := h.service.MoveTask(requestContext(c), id, *payload.Status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, http.StatusOK, "Task moved successfully", task)
		return
	}

	if payload.Title == nil && payload.Description == nil && payload.Status == nil &&
		payload.Priority == nil && payload.DueDate == nil && payload.AssignedID == nil {
		response.Error(c, appErrors.NewBadRequest("at least one field must be provided"))
		return
	}

	task, err := h.service.Update(requestContext(c), id, services.UpdateTaskInput{
		Title:       payload.Title,
		Description: payload.Description,
		Status:      payload.Status,
		Priority:    payload.Priority,
		DueDate:     payload.DueDate,
		AssignedID:  payload.AssignedID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Task updated successfully", task)
}

// Delete removes a task.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(requestContext(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, http.StatusOK, "Task deleted successfully", nil)
}
