package api

import (
	"context"
	"fmt"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
)

// GetProperties retrieves all property definitions
func (client *Client) GetProperties(ctx context.Context) ([]*model.Property, error) {
	return call[[]*model.Property](ctx, client, http.MethodGet, "/properties", nil)
}

// GetProperty retrieves a property definition by its ID
func (client *Client) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	return call[*model.Property](ctx, client, http.MethodGet, fmt.Sprintf("/properties/%d", id), nil)
}

// CreateProperty creates a new property definition
func (client *Client) CreateProperty(ctx context.Context, property *model.Property) (*model.Property, error) {
	return call[*model.Property](ctx, client, http.MethodPost, "/properties", property)
}

// UpdateProperty updates an existing property definition
func (client *Client) UpdateProperty(ctx context.Context, id int64, property *model.Property) (*model.Property, error) {
	return call[*model.Property](ctx, client, http.MethodPut, fmt.Sprintf("/properties/%d", id), property)
}

// DeleteProperty deletes a property definition by its ID
func (client *Client) DeleteProperty(ctx context.Context, id int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/properties/%d", id), nil)
}
