package schema

import (
	"encoding/json"
	"net/http"
)

// Writer helps writing responses in the format the asset manager API uses
type Writer struct {
	InternalErrorHook func(err error)
}

// WriteJSONCode writes the JSON representation of value to the given response writer using the given HTTP status code
func (writer *Writer) WriteJSONCode(rw http.ResponseWriter, code int, value any) {
	val, err := json.Marshal(value)
	if err != nil {
		writer.WriteInternalError(rw, err)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	rw.Write(val)
}

// WriteJSON writes the JSON representation of value to the given response writer.
// This method sends 200 OK as the HTTP status code; use WriteJSONCode to use a different one.
func (writer *Writer) WriteJSON(rw http.ResponseWriter, value any) {
	writer.WriteJSONCode(rw, http.StatusOK, value)
}

// WriteError sends an error response carrying message
func (writer *Writer) WriteError(rw http.ResponseWriter, code int, message string) {
	writer.WriteJSONCode(rw, code, &ErrorResponse{Error: message})
}

// WriteMessage sends a 200 OK response carrying message
func (writer *Writer) WriteMessage(rw http.ResponseWriter, message string) {
	writer.WriteJSON(rw, &Message{Message: message})
}

// WriteNoContent sends an empty 204 No Content response
func (writer *Writer) WriteNoContent(rw http.ResponseWriter) {
	rw.WriteHeader(http.StatusNoContent)
}

// WriteInternalError sends an internal server error response and calls the InternalErrorHook
func (writer *Writer) WriteInternalError(rw http.ResponseWriter, err error) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusInternalServerError)
	rw.Write([]byte(`{"Error":"internal server error"}`))
	if writer.InternalErrorHook != nil {
		writer.InternalErrorHook(err)
	}
}
