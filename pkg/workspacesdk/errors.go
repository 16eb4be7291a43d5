package workspacesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the service, carrying the HTTP status
// and the server's error message.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("workspace api: %d %s: %s",
		e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// IsNotFound reports whether the error is a 404 APIError.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsForbidden reports whether the error is a 403 APIError.
func IsForbidden(err error) bool { return hasStatus(err, http.StatusForbidden) }

// IsConflict reports whether the error is a 409 APIError. Conflicts cover
// duplicate pending invitations, non-pending invitations, lost accept races
// and last-owner removal.
func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

func hasStatus(err error, code int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == code
}

// parseErrorResponse turns an error body into an APIError. Bodies that are
// not the expected JSON shape still yield a usable error with the raw text.
func parseErrorResponse(statusCode int, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{StatusCode: statusCode, Message: er.Error}
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}
