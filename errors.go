// Copyright 2026 The ScreenPilot Authors
//
// Error types for automation server calls

package screenpilot

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingAPIKey is returned by NewClient when no API key is
	// configured. Nothing is attempted without one.
	ErrMissingAPIKey = errors.New("screenpilot: API key is required")

	// ErrServerNotRunning is returned by automation calls made before
	// StartServer has succeeded.
	ErrServerNotRunning = errors.New("screenpilot: automation server is not running (call StartServer first)")

	// ErrServerPathNotSet is returned by StartServer when neither a server
	// binary nor an address to attach to is configured.
	ErrServerPathNotSet = errors.New("screenpilot: no server binary or server address configured")
)

// APIError is a failed automation server call: a non-2xx status, or a 2xx
// response whose envelope reported success=false.
type APIError struct {
	Endpoint   string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("screenpilot: %s failed with status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("screenpilot: %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Suggestion returns an actionable hint for common failure classes, or ""
// when there is nothing useful to say.
func (e *APIError) Suggestion() string {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "check that SCREENPILOT_API_KEY matches the key the server was started with"
	case http.StatusNotFound:
		return "verify the resource exists and the identifier is correct"
	case http.StatusBadRequest:
		return "check the request parameters for invalid or missing values"
	case http.StatusConflict:
		return "the target is not in the expected state; re-read the overview before acting"
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return "the operation timed out; increase SCREENPILOT_REQUEST_TIMEOUT or simplify the request"
	case http.StatusTooManyRequests:
		return "the server is throttling requests; slow the workflow down"
	case http.StatusNotImplemented:
		return "this operation is not supported by the server version in use"
	case http.StatusServiceUnavailable:
		return "the automation server is busy or shutting down; check that it is still running"
	case http.StatusInternalServerError:
		return "an internal server error occurred; check the server logs"
	}
	return ""
}

// DescribeError formats an error for console output, appending the
// suggestion line for API errors that carry one.
func DescribeError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if s := apiErr.Suggestion(); s != "" {
			return fmt.Sprintf("%s\nSuggestion: %s", apiErr.Error(), s)
		}
	}
	return err.Error()
}
