package schema

import "time"

// CreateUserRequest is used to create a new user
type CreateUserRequest struct {
	Username string `json:"Username"`
	Email    string `json:"Email"`
	Password string `json:"Password"`
	IsActive bool   `json:"IsActive"`
}

// ResetPasswordRequest is used to set the password of another user
type ResetPasswordRequest struct {
	Password string `json:"Password"`
}

// AssignRequest is used to assign an asset to a person.
// A nil EffectiveDate lets the server use the current time.
type AssignRequest struct {
	AssetID       int64      `json:"AssetID"`
	PersonID      int64      `json:"PersonID"`
	Notes         string     `json:"Notes"`
	EffectiveDate *time.Time `json:"EffectiveDate"`
}

// UnassignRequest is used to hand an asset back.
// EffectiveDate uses the YYYY-MM-DD format; an empty value lets the server use the current day.
type UnassignRequest struct {
	EffectiveDate string `json:"EffectiveDate"`
}

// EndAssignmentRequest is used to end an assignment.
// A nil EndDate lets the server use the current time.
type EndAssignmentRequest struct {
	EndDate *time.Time `json:"EndDate"`
}
