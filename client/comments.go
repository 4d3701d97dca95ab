package client

import (
	"context"
	"fmt"
	"net/http"
)

// TaskComments lists a task's comments with authors expanded.
func (c *Client) TaskComments(ctx context.Context, taskID uint) ([]Comment, error) {
	return getCached[[]Comment](ctx, c, keyTaskComments(taskID),
		fmt.Sprintf("/comment/task/%d", taskID))
}

// CreateComment attaches a comment to a task. Task payloads embed comments,
// so the task keys are invalidated too.
func (c *Client) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	var comment Comment
	if err := c.doJSON(ctx, http.MethodPost, "/comment/create", req, &comment); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTaskComments(req.TaskID), keyTask(req.TaskID), keyTaskAll())
	return &comment, nil
}

// DeleteComment removes a comment. The owning task is supplied by the caller
// for precise invalidation.
func (c *Client) DeleteComment(ctx context.Context, id, taskID uint) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/comment/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(keyTaskComments(taskID), keyTask(taskID), keyTaskAll())
	return nil
}
