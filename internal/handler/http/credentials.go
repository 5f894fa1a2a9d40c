package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarpenko/credvault/internal/logger"
	"github.com/mkarpenko/credvault/internal/utils"
	"github.com/mkarpenko/credvault/models"
)

func (h *Handler) createCredential(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credential models.Credential
	if err := json.NewDecoder(r.Body).Decode(&credential); err != nil {
		log.Err(err).Str("func", "*Handler.createCredential").Msg("invalid JSON was passed")
		writeError(w, err, http.StatusBadRequest)
		return
	}

	id, err := h.services.CredentialService.Create(r.Context(), credential)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createCredential").Msg("error creating credential")
		writeError(w, err, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.CreateResponse{ID: id}, http.StatusOK)
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	q := r.URL.Query().Get("q")

	credentials, err := h.services.CredentialService.List(r.Context(), q)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listCredentials").Str("q", q).Msg("error listing credentials")
		writeError(w, err, statusFromError(err))
		return
	}

	utils.WriteJSON(w, credentials, http.StatusOK)
}
