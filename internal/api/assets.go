package api

import (
	"context"
	"fmt"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
	"net/url"
)

// GetAssets retrieves all assets
func (client *Client) GetAssets(ctx context.Context) ([]*model.Asset, error) {
	return call[[]*model.Asset](ctx, client, http.MethodGet, "/assets", nil)
}

// GetAssetsWithAssignments retrieves all assets together with their current assignee
func (client *Client) GetAssetsWithAssignments(ctx context.Context) ([]*model.AssetWithAssignment, error) {
	return call[[]*model.AssetWithAssignment](ctx, client, http.MethodGet, "/assets/with-assignments", nil)
}

// GetAsset retrieves an asset by its ID
func (client *Client) GetAsset(ctx context.Context, id int64) (*model.Asset, error) {
	return call[*model.Asset](ctx, client, http.MethodGet, fmt.Sprintf("/assets/%d", id), nil)
}

// GetAssetsByType retrieves all assets of a specific asset type
func (client *Client) GetAssetsByType(ctx context.Context, typeID int64) ([]*model.Asset, error) {
	return call[[]*model.Asset](ctx, client, http.MethodGet, fmt.Sprintf("/assets/by-type/%d", typeID), nil)
}

// SearchAssets retrieves all assets matching a free-text query
func (client *Client) SearchAssets(ctx context.Context, query string) ([]*model.Asset, error) {
	return call[[]*model.Asset](ctx, client, http.MethodGet, "/assets/search?"+url.Values{"q": {query}}.Encode(), nil)
}

// CreateAsset creates a new asset
func (client *Client) CreateAsset(ctx context.Context, asset *model.Asset) (*model.Asset, error) {
	return call[*model.Asset](ctx, client, http.MethodPost, "/assets", asset)
}

// UpdateAsset updates an existing asset
func (client *Client) UpdateAsset(ctx context.Context, id int64, asset *model.Asset) (*model.Asset, error) {
	return call[*model.Asset](ctx, client, http.MethodPut, fmt.Sprintf("/assets/%d", id), asset)
}

// DeleteAsset deletes an asset by its ID
func (client *Client) DeleteAsset(ctx context.Context, id int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/assets/%d", id), nil)
}

// GetAssetProperties retrieves the property values of an asset
func (client *Client) GetAssetProperties(ctx context.Context, id int64) ([]*model.AssetProperty, error) {
	return call[[]*model.AssetProperty](ctx, client, http.MethodGet, fmt.Sprintf("/assets/%d/properties", id), nil)
}

// SetAssetProperty sets the value of a property of an asset
func (client *Client) SetAssetProperty(ctx context.Context, id int64, property *model.AssetProperty) (*model.AssetProperty, error) {
	return call[*model.AssetProperty](ctx, client, http.MethodPost, fmt.Sprintf("/assets/%d/properties", id), property)
}

// DeleteAssetProperty removes the value of a property from an asset
func (client *Client) DeleteAssetProperty(ctx context.Context, id, propertyID int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/assets/%d/properties/%d", id, propertyID), nil)
}
