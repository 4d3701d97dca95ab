package client

import (
	"context"
	"fmt"
	"net/http"
)

// Tasks lists every task with its relations.
func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	return getCached[[]Task](ctx, c, keyTaskAll(), "/task/all")
}

// Task fetches a single task.
func (c *Client) Task(ctx context.Context, id uint) (Task, error) {
	return getCached[Task](ctx, c, keyTask(id), fmt.Sprintf("/task/%d", id))
}

// ProjectTasks lists a project's tasks in arrival order.
func (c *Client) ProjectTasks(ctx context.Context, projectID uint) ([]Task, error) {
	return getCached[[]Task](ctx, c, keyProjectTasks(projectID),
		fmt.Sprintf("/projects/%d/tasks", projectID))
}

// ProjectBoard fetches a project's tasks grouped into status columns.
func (c *Client) ProjectBoard(ctx context.Context, projectID uint) (Board, error) {
	return getCached[Board](ctx, c, keyProjectBoard(projectID),
		fmt.Sprintf("/projects/%d/tasks?view=board", projectID))
}

// CreateTask registers a task on a project.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.doJSON(ctx, http.MethodPost, "/task/create", req, &task); err != nil {
		return nil, err
	}
	c.invalidateTaskKeys(task.ID, task.ProjectID)
	return &task, nil
}

// UpdateTask applies a partial update.
func (c *Client) UpdateTask(ctx context.Context, id uint, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/task/%d", id), req, &task); err != nil {
		return nil, err
	}
	c.invalidateTaskKeys(id, task.ProjectID)
	return &task, nil
}

// MoveTask changes only a task's status. Only the owning project's task keys
// are invalidated; other projects' cached boards stay warm.
func (c *Client) MoveTask(ctx context.Context, id uint, status string) (*Task, error) {
	var task Task
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/task/%d", id),
		map[string]string{"status": status}, &task)
	if err != nil {
		return nil, err
	}
	c.invalidateTaskKeys(id, task.ProjectID)
	return &task, nil
}

// DeleteTask removes a task. The owning project is unknown after deletion,
// so the caller supplies it for precise invalidation.
func (c *Client) DeleteTask(ctx context.Context, id, projectID uint) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/task/%d", id), nil, nil); err != nil {
		return err
	}
	c.invalidateTaskKeys(id, projectID)
	return nil
}

func (c *Client) invalidateTaskKeys(taskID, projectID uint) {
	c.cache.invalidate(
		keyTask(taskID), keyTaskAll(),
		keyProjectTasks(projectID), keyProjectBoard(projectID),
		keyProject(projectID),
	)
}
