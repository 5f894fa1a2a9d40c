package adapter

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/mkarpenko/credvault/models"
)

var (
	// ErrBadRequest covers 4xx answers: the server rejected the payload.
	ErrBadRequest = errors.New("request rejected")

	// ErrServerFailure covers 5xx answers: the server could not complete
	// the operation.
	ErrServerFailure = errors.New("server failure")
)

// mapAPIError converts a non-success HTTP response into a typed error
// carrying the server-reported detail text.
func mapAPIError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}

	detail := resp.Status()
	var payload models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Detail != "" {
		detail = payload.Detail
	}

	if resp.StatusCode() >= 500 {
		return fmt.Errorf("%w: %s", ErrServerFailure, detail)
	}
	return fmt.Errorf("%w: %s", ErrBadRequest, detail)
}
