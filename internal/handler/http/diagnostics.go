package http

import (
	"net/http"

	"github.com/mkarpenko/credvault/internal/utils"
)

// testDatabase reports store connectivity and configuration status.
// The endpoint is deliberately fail-soft: the service layer folds every
// probe failure into the status texts, so the handler always answers 200
// with a best-effort payload.
func (h *Handler) testDatabase(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.Report(r.Context())

	utils.WriteJSON(w, report, http.StatusOK)
}
