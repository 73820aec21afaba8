package notification

import "time"

// Severity represents the visual severity of a notification
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// The default timeouts used by the severity-named shortcuts of the Store
const (
	DefaultTimeout        = 5 * time.Second
	DefaultSuccessTimeout = 5 * time.Second
	DefaultErrorTimeout   = 8 * time.Second
	DefaultWarningTimeout = 6 * time.Second
	DefaultInfoTimeout    = 5 * time.Second
)

// Notification represents a transient message surfaced to the user
type Notification struct {
	ID       uint64   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"type"`
}
