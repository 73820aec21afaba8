// Package model contains the records exchanged with the asset manager REST API.
// Field names follow the PascalCase JSON keys emitted by the server.
package model

import "time"

// Base contains the fields every stored record carries
type Base struct {
	ID        int64     `json:"ID"`
	CreatedAt time.Time `json:"CreatedAt"`
	UpdatedAt time.Time `json:"UpdatedAt"`
	DeletedAt NullTime  `json:"DeletedAt,omitempty"`
}

// User represents an application user able to log in
type User struct {
	Base
	Username string `json:"Username"`
	Email    string `json:"Email"`
	IsActive bool   `json:"IsActive"`
}

// AssetType represents a category of assets
type AssetType struct {
	Base
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Asset represents a tracked asset
type Asset struct {
	Base
	AssetTypeID   int64    `json:"AssetTypeID"`
	Name          string   `json:"Name"`
	Model         string   `json:"Model"`
	SerialNumber  string   `json:"SerialNumber"`
	OrderNo       string   `json:"OrderNo"`
	LicenseNumber string   `json:"LicenseNumber"`
	Notes         string   `json:"Notes"`
	PurchasedAt   NullTime `json:"PurchasedAt,omitempty"`

	AssetTypeName string `json:"AssetTypeName,omitempty"`
}

// AssetWithAssignment combines an asset with its current assignment
type AssetWithAssignment struct {
	Asset
	CurrentAssignee   *string  `json:"CurrentAssignee,omitempty"`
	CurrentAssigneeID *int64   `json:"CurrentAssigneeID,omitempty"`
	AssignedFrom      NullTime `json:"AssignedFrom,omitempty"`
}

// DataType represents the type of the values of properties and attributes
type DataType string

const (
	DataTypeString   DataType = "string"
	DataTypeInt      DataType = "int"
	DataTypeDecimal  DataType = "decimal"
	DataTypeBoolean  DataType = "boolean"
	DataTypeDate     DataType = "date"
	DataTypeDatetime DataType = "datetime"
	DataTypeEnum     DataType = "enum"
)

// Property defines a custom property that can be attached to assets
type Property struct {
	Base
	Name     string   `json:"Name"`
	DataType DataType `json:"DataType"`
	// EnumOptions holds a JSON array of the allowed values of enum properties
	EnumOptions string `json:"EnumOptions,omitempty"`
}

// AssetProperty holds the value of a property of a specific asset
type AssetProperty struct {
	Base
	AssetID    int64  `json:"AssetID"`
	PropertyID int64  `json:"PropertyID"`
	Value      string `json:"Value"`

	PropertyName string   `json:"PropertyName,omitempty"`
	DataType     DataType `json:"DataType,omitempty"`
}

// Person represents a person assets can be assigned to
type Person struct {
	Base
	Name  string `json:"Name"`
	Email string `json:"Email"`
	Phone string `json:"Phone"`
}

// Attribute defines a custom attribute that can be attached to persons
type Attribute struct {
	Base
	Name        string   `json:"Name"`
	DataType    DataType `json:"DataType"`
	EnumOptions string   `json:"EnumOptions,omitempty"`
}

// PersonAttribute holds the value of an attribute of a specific person
type PersonAttribute struct {
	Base
	PersonID    int64  `json:"PersonID"`
	AttributeID int64  `json:"AttributeID"`
	Value       string `json:"Value"`

	AttributeName string   `json:"AttributeName,omitempty"`
	DataType      DataType `json:"DataType,omitempty"`
}

// AssetAssignment tracks the assignment of an asset to a person over time
type AssetAssignment struct {
	Base
	AssetID       int64    `json:"AssetID"`
	PersonID      int64    `json:"PersonID"`
	EffectiveFrom NullTime `json:"EffectiveFrom"`
	EffectiveTo   NullTime `json:"EffectiveTo,omitempty"`
	Notes         string   `json:"Notes"`

	AssetName         string `json:"AssetName,omitempty"`
	PersonName        string `json:"PersonName,omitempty"`
	AssetTypeName     string `json:"AssetTypeName,omitempty"`
	AssetModel        string `json:"AssetModel,omitempty"`
	AssetSerialNumber string `json:"AssetSerialNumber,omitempty"`
}
