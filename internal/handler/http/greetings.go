package http

import (
	"net/http"

	"github.com/mkarpenko/credvault/internal/utils"
	"github.com/mkarpenko/credvault/models"
)

func (h *Handler) readRoot(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Greeting{Message: "Hello from FastAPI Backend!"}, http.StatusOK)
}

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Greeting{Message: "Hello from the backend API!"}, http.StatusOK)
}
