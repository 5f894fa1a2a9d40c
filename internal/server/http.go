package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mkarpenko/credvault/internal/config"
	"github.com/mkarpenko/credvault/internal/logger"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(handler http.Handler, cfg config.Server, log *logger.Logger) *httpServer {
	log.Info().Str("address", cfg.Address()).Msg("creating HTTP server")

	return &httpServer{
		server: &http.Server{
			Addr:    cfg.Address(),
			Handler: handler,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
