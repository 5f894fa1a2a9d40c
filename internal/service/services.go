package service

import (
	"github.com/mkarpenko/credvault/internal/logger"
	"github.com/mkarpenko/credvault/internal/store"
	"github.com/mkarpenko/credvault/internal/validators"
)

// Services aggregates every application service exposed to the transport
// layer.
type Services struct {
	CredentialService  CredentialService
	DiagnosticsService DiagnosticsService
}

// NewServices wires the application services on top of the given storages.
func NewServices(storages *store.Storages, log *logger.Logger) *Services {
	log.Info().Msg("creating new services...")

	return &Services{
		CredentialService:  NewCredentialService(storages.Documents, validators.NewCredentialValidator(), log),
		DiagnosticsService: NewDiagnosticsService(storages.Documents, log),
	}
}
