package api

import (
	"context"
	"fmt"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
	"time"
)

// GetAssetAssignments retrieves the assignment history of an asset
func (client *Client) GetAssetAssignments(ctx context.Context, assetID int64) ([]*model.AssetAssignment, error) {
	return call[[]*model.AssetAssignment](ctx, client, http.MethodGet, fmt.Sprintf("/assignments/asset/%d", assetID), nil)
}

// GetCurrentAssetAssignment retrieves the current assignment of an asset.
// It returns nil if the asset is not assigned.
func (client *Client) GetCurrentAssetAssignment(ctx context.Context, assetID int64) (*model.AssetAssignment, error) {
	return call[*model.AssetAssignment](ctx, client, http.MethodGet, fmt.Sprintf("/assignments/asset/%d/current", assetID), nil)
}

// GetPersonAssignments retrieves the assignment history of a person
func (client *Client) GetPersonAssignments(ctx context.Context, personID int64) ([]*model.AssetAssignment, error) {
	return call[[]*model.AssetAssignment](ctx, client, http.MethodGet, fmt.Sprintf("/assignments/person/%d", personID), nil)
}

// GetCurrentPersonAssignments retrieves the assignments currently held by a person
func (client *Client) GetCurrentPersonAssignments(ctx context.Context, personID int64) ([]*model.AssetAssignment, error) {
	return call[[]*model.AssetAssignment](ctx, client, http.MethodGet, fmt.Sprintf("/assignments/person/%d/current", personID), nil)
}

// CreateAssignment creates a raw assignment record
func (client *Client) CreateAssignment(ctx context.Context, assignment *model.AssetAssignment) (*model.AssetAssignment, error) {
	return call[*model.AssetAssignment](ctx, client, http.MethodPost, "/assignments", assignment)
}

// AssignAsset assigns an asset to a person, ending its previous assignment.
// A nil effectiveDate lets the server use the current time.
func (client *Client) AssignAsset(ctx context.Context, assetID, personID int64, notes string, effectiveDate *time.Time) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodPost, "/assignments/assign", &schema.AssignRequest{
		AssetID:       assetID,
		PersonID:      personID,
		Notes:         notes,
		EffectiveDate: effectiveDate,
	})
}

// UnassignAsset hands an asset back.
// effectiveDate uses the YYYY-MM-DD format; an empty value lets the server use the current day.
func (client *Client) UnassignAsset(ctx context.Context, assetID int64, effectiveDate string) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodPost, fmt.Sprintf("/assignments/unassign/%d", assetID), &schema.UnassignRequest{
		EffectiveDate: effectiveDate,
	})
}

// UpdateAssignment updates an existing assignment record
func (client *Client) UpdateAssignment(ctx context.Context, id int64, assignment *model.AssetAssignment) (*model.AssetAssignment, error) {
	return call[*model.AssetAssignment](ctx, client, http.MethodPut, fmt.Sprintf("/assignments/%d", id), assignment)
}

// EndAssignment ends an assignment.
// A nil endDate lets the server use the current time.
func (client *Client) EndAssignment(ctx context.Context, id int64, endDate *time.Time) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodPost, fmt.Sprintf("/assignments/%d/end", id), &schema.EndAssignmentRequest{
		EndDate: endDate,
	})
}

// DeleteAssignment deletes an assignment record by its ID
func (client *Client) DeleteAssignment(ctx context.Context, id int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/assignments/%d", id), nil)
}
