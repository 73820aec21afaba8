package schema

import "github.com/skybi/asset-manager/internal/model"

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
	Remember bool   `json:"Remember"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token     string     `json:"Token"`
	ExpiresAt int64      `json:"ExpiresAt"`
	User      model.User `json:"User"`
}

// ChangePasswordRequest is used to change the password of the authenticated user
type ChangePasswordRequest struct {
	CurrentPassword string `json:"CurrentPassword"`
	NewPassword     string `json:"NewPassword"`
}
