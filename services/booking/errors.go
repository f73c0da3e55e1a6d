package booking

import "fmt"

// SessionError marks a failure tied to the booking session state rather than
// the infrastructure.
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError(sessionID string) error {
	return &SessionError{Code: "sessionNotFound", Message: "booking session " + sessionID + " not found or expired"}
}

func NewInvalidSelectionError(msg string) error {
	return &SessionError{Code: "invalidSelection", Message: msg}
}
