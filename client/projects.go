package client

import (
	"context"
	"fmt"
	"net/http"
)

// Projects lists every project with its team expanded.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	return getCached[[]Project](ctx, c, keyProjectAll(), "/project/all")
}

// Project fetches a single project with team, owner and tasks.
func (c *Client) Project(ctx context.Context, id uint) (Project, error) {
	return getCached[Project](ctx, c, keyProject(id), fmt.Sprintf("/project/%d", id))
}

// CreateProject registers a project. Team payloads embed projects, so the
// owning team's keys are invalidated as well.
func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var project Project
	if err := c.doJSON(ctx, http.MethodPost, "/project/create", req, &project); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyProjectAll(), keyTeam(req.TeamID), keyTeamAll())
	return &project, nil
}

// UpdateProject applies a partial update.
func (c *Client) UpdateProject(ctx context.Context, id uint, req UpdateProjectRequest) (*Project, error) {
	var project Project
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/project/%d", id), req, &project); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyProjectAll(), keyProject(id), keyTeam(project.TeamID), keyTeamAll())
	return &project, nil
}

// DeleteProject removes a project and its tasks.
func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/project/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(
		keyProjectAll(), keyProject(id),
		keyProjectTasks(id), keyProjectBoard(id),
		keyTaskAll(), keyTeamAll(),
	)
	return nil
}
