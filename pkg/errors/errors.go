package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code and a client-safe message.
// Delivery layers map domain errors to HTTPError before responding.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
