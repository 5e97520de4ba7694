package api

import "errors"

// GenericErrorMessage is shown whenever a failure carries no
// server-supplied message (network unreachable, unparseable body).
const GenericErrorMessage = "An error occurred while processing your request."

// ServiceError is a structured error returned by the backend.
// Message is human-readable and intended for direct display.
type ServiceError struct {
	Message    string
	StatusCode int
}

func (e *ServiceError) Error() string {
	return e.Message
}

// ErrorMessage returns the text a command should show the user for err:
// the backend's own message when there is one, the generic fallback
// otherwise. Never returns an empty string for a non-nil error.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) && serviceErr.Message != "" {
		return serviceErr.Message
	}

	return GenericErrorMessage
}
