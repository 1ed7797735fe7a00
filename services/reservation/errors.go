package reservation

import (
	"fmt"
	"strings"
)

// ValidationError rejects malformed booking input before any ledger work.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Collision names one instance/date pair that blocked a submission.
type Collision struct {
	InstanceName string `json:"instanceName"`
	Date         string `json:"date"`
}

// ConflictError is the structured write-time rejection: it enumerates
// every colliding instance and date so the UI can steer the guest to a
// different instance or date instead of a generic failure.
type ConflictError struct {
	Collisions []Collision
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Collisions))
	for _, c := range e.Collisions {
		parts = append(parts, fmt.Sprintf("%s on %s", c.InstanceName, c.Date))
	}
	return "requested resources already booked: " + strings.Join(parts, ", ")
}
