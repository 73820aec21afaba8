package api

import (
	"context"
	"fmt"
	"github.com/skybi/asset-manager/internal/api/schema"
	"github.com/skybi/asset-manager/internal/model"
	"net/http"
	"net/url"
)

// GetPersons retrieves all persons
func (client *Client) GetPersons(ctx context.Context) ([]*model.Person, error) {
	return call[[]*model.Person](ctx, client, http.MethodGet, "/persons", nil)
}

// GetPerson retrieves a person by their ID
func (client *Client) GetPerson(ctx context.Context, id int64) (*model.Person, error) {
	return call[*model.Person](ctx, client, http.MethodGet, fmt.Sprintf("/persons/%d", id), nil)
}

// SearchPersons retrieves all persons matching a free-text query
func (client *Client) SearchPersons(ctx context.Context, query string) ([]*model.Person, error) {
	return call[[]*model.Person](ctx, client, http.MethodGet, "/persons/search?"+url.Values{"q": {query}}.Encode(), nil)
}

// CreatePerson creates a new person
func (client *Client) CreatePerson(ctx context.Context, person *model.Person) (*model.Person, error) {
	return call[*model.Person](ctx, client, http.MethodPost, "/persons", person)
}

// UpdatePerson updates an existing person
func (client *Client) UpdatePerson(ctx context.Context, id int64, person *model.Person) (*model.Person, error) {
	return call[*model.Person](ctx, client, http.MethodPut, fmt.Sprintf("/persons/%d", id), person)
}

// DeletePerson deletes a person by their ID
func (client *Client) DeletePerson(ctx context.Context, id int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/persons/%d", id), nil)
}

// GetPersonAttributes retrieves the attribute values of a person
func (client *Client) GetPersonAttributes(ctx context.Context, id int64) ([]*model.PersonAttribute, error) {
	return call[[]*model.PersonAttribute](ctx, client, http.MethodGet, fmt.Sprintf("/persons/%d/attributes", id), nil)
}

// SetPersonAttribute sets the value of an attribute of a person
func (client *Client) SetPersonAttribute(ctx context.Context, id int64, attribute *model.PersonAttribute) (*model.PersonAttribute, error) {
	return call[*model.PersonAttribute](ctx, client, http.MethodPost, fmt.Sprintf("/persons/%d/attributes", id), attribute)
}

// DeletePersonAttribute removes the value of an attribute from a person
func (client *Client) DeletePersonAttribute(ctx context.Context, id, attributeID int64) (*schema.Message, error) {
	return call[*schema.Message](ctx, client, http.MethodDelete, fmt.Sprintf("/persons/%d/attributes/%d", id, attributeID), nil)
}
