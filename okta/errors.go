package okta

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrAuthFailed        = fmt.Errorf("authentication failed")
	ErrRateLimitExceeded = fmt.Errorf("rate limit exceeded")
	ErrNoMorePages       = fmt.Errorf("no more pages")

	ErrInvalidGroup       = fmt.Errorf("invalid group")
	ErrInvalidUser        = fmt.Errorf("invalid user")
	ErrInvalidApplication = fmt.Errorf("invalid application")
)

// APIError is the error body okta returns on non-2xx responses.
type APIError struct {
	StatusCode int `json:"-"`

	Code      string          `json:"errorCode,omitempty"`
	Summary   string          `json:"errorSummary,omitempty"`
	Link      string          `json:"errorLink,omitempty"`
	RequestID string          `json:"errorId,omitempty"`
	Causes    []APIErrorCause `json:"errorCauses,omitempty"`
}

type APIErrorCause struct {
	Summary string `json:"errorSummary,omitempty"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed with status code %d\n%s", e.StatusCode, e.Summary)
	}
	return fmt.Sprintf("request failed with status code %d: %s: %s", e.StatusCode, e.Code, e.Summary)
}

// IsNotFound reports whether err is an okta 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode/100 == 2 {
		return nil
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimitExceeded
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Summary = strings.TrimSpace(string(body))
	}

	return apiErr
}
