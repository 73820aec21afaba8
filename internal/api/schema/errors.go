package schema

// ErrorResponse represents the body the API sends along with unsuccessful status codes
type ErrorResponse struct {
	Error string `json:"Error"`
}

// Message represents the body the API sends for actions that do not return a record
type Message struct {
	Message string `json:"Message"`
}
