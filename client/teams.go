package client

import (
	"context"
	"fmt"
	"net/http"
)

// Teams lists every team with members expanded.
func (c *Client) Teams(ctx context.Context) ([]Team, error) {
	return getCached[[]Team](ctx, c, keyTeamAll(), "/team/all")
}

// Team fetches a single team with members and projects.
func (c *Client) Team(ctx context.Context, id uint) (Team, error) {
	return getCached[Team](ctx, c, keyTeam(id), fmt.Sprintf("/team/%d", id))
}

// CreateTeam registers a team, optionally with initial members.
func (c *Client) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	var team Team
	if err := c.doJSON(ctx, http.MethodPost, "/team/create", req, &team); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTeamAll())
	return &team, nil
}

// UpdateTeam applies a partial update. A non-empty MemberIDs list replaces
// the whole membership set, so the member list key is invalidated too.
func (c *Client) UpdateTeam(ctx context.Context, id uint, req UpdateTeamRequest) (*Team, error) {
	var team Team
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/team/%d", id), req, &team); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTeamAll(), keyTeam(id), keyTeamMembers(id))
	return &team, nil
}

// DeleteTeam removes a team and its memberships.
func (c *Client) DeleteTeam(ctx context.Context, id uint) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/team/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(keyTeamAll(), keyTeam(id), keyTeamMembers(id))
	return nil
}

// TeamMembers lists a team's memberships with users expanded.
func (c *Client) TeamMembers(ctx context.Context, teamID uint) ([]TeamMember, error) {
	return getCached[[]TeamMember](ctx, c, keyTeamMembers(teamID), fmt.Sprintf("/member/%d", teamID))
}

// AddMember attaches a user to a team. Team payloads embed members, so the
// team keys are invalidated alongside the member list.
func (c *Client) AddMember(ctx context.Context, userID, teamID uint, role string) (*TeamMember, error) {
	payload := map[string]any{"userId": userID, "teamId": teamID}
	if role != "" {
		payload["role"] = role
	}

	var member TeamMember
	if err := c.doJSON(ctx, http.MethodPost, "/member/add", payload, &member); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTeamMembers(teamID), keyTeam(teamID), keyTeamAll())
	return &member, nil
}

// UpdateMemberRole changes the role of an existing membership.
func (c *Client) UpdateMemberRole(ctx context.Context, userID, teamID uint, role string) (*TeamMember, error) {
	var member TeamMember
	err := c.doJSON(ctx, http.MethodPut, "/member/update-role", map[string]any{
		"userId": userID,
		"teamId": teamID,
		"role":   role,
	}, &member)
	if err != nil {
		return nil, err
	}
	c.cache.invalidate(keyTeamMembers(teamID), keyTeam(teamID), keyTeamAll())
	return &member, nil
}

// RemoveMember detaches a user from a team.
func (c *Client) RemoveMember(ctx context.Context, userID, teamID uint) error {
	err := c.doJSON(ctx, http.MethodDelete, "/member/remove", map[string]any{
		"userId": userID,
		"teamId": teamID,
	}, nil)
	if err != nil {
		return err
	}
	c.cache.invalidate(keyTeamMembers(teamID), keyTeam(teamID), keyTeamAll())
	return nil
}
