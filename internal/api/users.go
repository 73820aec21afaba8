package api

import (
	"context"
	"fmt"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
)

// GetUsers retrieves all users
func (client *Client) GetUsers(ctx context.Context) ([]*model.User, error) {
	return call[[]*model.User](ctx, client, http.MethodGet, "/users", nil)
}

// GetUser retrieves a user by their ID
func (client *Client) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return call[*model.User](ctx, client, http.MethodGet, fmt.Sprintf("/users/%d", id), nil)
}

// CreateUser creates a new user
func (client *Client) CreateUser(ctx context.Context, create *schema.CreateUserRequest) (*model.User, error) {
	return call[*model.User](ctx, client, http.MethodPost, "/users", create)
}

// UpdateUser updates an existing user
func (client *Client) UpdateUser(ctx context.Context, id int64, user *model.User) (*model.User, error) {
	return call[*model.User](ctx, client, http.MethodPut, fmt.Sprintf("/users/%d", id), user)
}

// ResetUserPassword sets a new password for another user
func (client *Client) ResetUserPassword(ctx context.Context, id int64, password string) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodPost, fmt.Sprintf("/users/%d/reset-password", id), &schema.ResetPasswordRequest{
		Password: password,
	})
}

// DeleteUser deletes a user by their ID
func (client *Client) DeleteUser(ctx context.Context, id int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
}
