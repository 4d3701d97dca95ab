package client

import (
	"context"
	"fmt"
	"net/http"
)

// Users lists every registered user.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	return getCached[[]User](ctx, c, keyUserAll(), "/user/all")
}

// User fetches a single user.
func (c *Client) User(ctx context.Context, id uint) (User, error) {
	return getCached[User](ctx, c, keyUser(id), fmt.Sprintf("/user/%d", id))
}

// CreateUser registers a user without adopting its identity.
func (c *Client) CreateUser(ctx context.Context, name, email, password string) (*User, error) {
	var user User
	err := c.doJSON(ctx, http.MethodPost, "/user/create", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, &user)
	if err != nil {
		return nil, err
	}
	c.cache.invalidate(keyUserAll())
	return &user, nil
}

// UpdateUser applies a partial update.
func (c *Client) UpdateUser(ctx context.Context, id uint, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/user/%d", id), req, &user); err != nil {
		return nil, err
	}
	c.cache.invalidate(keyUserAll(), keyUser(id))
	return &user, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	if err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/user/%d", id), nil, nil); err != nil {
		return err
	}
	c.cache.invalidate(keyUserAll(), keyUser(id))
	return nil
}
