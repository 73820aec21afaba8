package api

import (
	"context"
	"fmt"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
)

// GetAttributes retrieves all attribute definitions
func (client *Client) GetAttributes(ctx context.Context) ([]*model.Attribute, error) {
	return call[[]*model.Attribute](ctx, client, http.MethodGet, "/attributes", nil)
}

// GetAttribute retrieves an attribute definition by its ID
func (client *Client) GetAttribute(ctx context.Context, id int64) (*model.Attribute, error) {
	return call[*model.Attribute](ctx, client, http.MethodGet, fmt.Sprintf("/attributes/%d", id), nil)
}

// CreateAttribute creates a new attribute definition
func (client *Client) CreateAttribute(ctx context.Context, attribute *model.Attribute) (*model.Attribute, error) {
	return call[*model.Attribute](ctx, client, http.MethodPost, "/attributes", attribute)
}

// UpdateAttribute updates an existing attribute definition
func (client *Client) UpdateAttribute(ctx context.Context, id int64, attribute *model.Attribute) (*model.Attribute, error) {
	return call[*model.Attribute](ctx, client, http.MethodPut, fmt.Sprintf("/attributes/%d", id), attribute)
}

// DeleteAttribute deletes an attribute definition by its ID
func (client *Client) DeleteAttribute(ctx context.Context, id int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/attributes/%d", id), nil)
}
