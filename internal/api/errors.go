package api

import "errors"

// ErrUnauthorized is returned for every response with status 401.
// The client's unauthorized callback has already been invoked when a caller sees it.
var ErrUnauthorized = errors.New("unauthorized")

// GenericErrorMessage is used when a response carries no readable error message or lacks the expected record
const GenericErrorMessage = "Request failed"

// RequestError represents an unsuccessful (non-2xx, non-401) response
type RequestError struct {
	Status  int
	Message string
}

// Error returns the message the server sent along with the response
func (err *RequestError) Error() string {
	return err.Message
}
