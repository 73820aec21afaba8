package api

import (
	"context"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
)

// Login exchanges credentials for a bearer token.
// Remember asks the server for a long-lived token.
func (client *Client) Login(ctx context.Context, username, password string, remember bool) (*schema.LoginResponse, error) {
	return callRecord[schema.LoginResponse](ctx, client, http.MethodPost, "/auth/login", &schema.LoginRequest{
		Username: username,
		Password: password,
		Remember: remember,
	})
}

// Me retrieves the user the current token belongs to
func (client *Client) Me(ctx context.Context) (*model.User, error) {
	return callRecord[model.User](ctx, client, http.MethodGet, "/auth/me", nil)
}

// ChangePassword changes the password of the authenticated user
func (client *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodPost, "/auth/change-password", &schema.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
}
