package http

import (
	"errors"
	"net/http"

	"github.com/mkarpenko/credvault/internal/utils"
	"github.com/mkarpenko/credvault/internal/validators"
	"github.com/mkarpenko/credvault/models"
)

var errorStatusMap = map[error]int{
	validators.ErrValidationNoTitle:    http.StatusBadRequest,
	validators.ErrValidationNoUsername: http.StatusBadRequest,
	validators.ErrValidationNoPassword: http.StatusBadRequest,
	validators.ErrUnsupportedType:      http.StatusBadRequest,
}

// statusFromError maps a service-layer error to an HTTP status code.
// Validation failures are the caller's fault; everything else, including
// every store failure, is reported uniformly as 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the uniform failure payload: a JSON object whose
// "detail" field carries the stringified error.
func writeError(w http.ResponseWriter, err error, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: err.Error()}, statusCode)
}
