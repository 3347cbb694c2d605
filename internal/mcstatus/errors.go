package mcstatus

import "fmt"

// Error types for status API operations.
var (
	ErrInvalidAddress  = fmt.Errorf("invalid server address")
	ErrInvalidResponse = fmt.Errorf("invalid status response")
	ErrAPIUnavailable  = fmt.Errorf("status API unavailable")
)

// APIError represents a non-success HTTP response from the status API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status API error (status %d): %s", e.StatusCode, e.Message)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}
