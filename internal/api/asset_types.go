package api

import (
	"context"
	"fmt"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
)

// GetAssetTypes retrieves all asset types
func (client *Client) GetAssetTypes(ctx context.Context) ([]*model.AssetType, error) {
	return call[[]*model.AssetType](ctx, client, http.MethodGet, "/asset-types", nil)
}

// GetAssetType retrieves an asset type by its ID
func (client *Client) GetAssetType(ctx context.Context, id int64) (*model.AssetType, error) {
	return call[*model.AssetType](ctx, client, http.MethodGet, fmt.Sprintf("/asset-types/%d", id), nil)
}

// CreateAssetType creates a new asset type
func (client *Client) CreateAssetType(ctx context.Context, assetType *model.AssetType) (*model.AssetType, error) {
	return call[*model.AssetType](ctx, client, http.MethodPost, "/asset-types", assetType)
}

// UpdateAssetType updates an existing asset type
func (client *Client) UpdateAssetType(ctx context.Context, id int64, assetType *model.AssetType) (*model.AssetType, error) {
	return call[*model.AssetType](ctx, client, http.MethodPut, fmt.Sprintf("/asset-types/%d", id), assetType)
}

// DeleteAssetType deletes an asset type by its ID
func (client *Client) DeleteAssetType(ctx context.Context, id int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/asset-types/%d", id), nil)
}
