package store

import (
	"context"

	"github.com/mkarpenko/credvault/internal/config"
	"github.com/mkarpenko/credvault/internal/logger"
)

// Storages aggregates every persistence backend used by the service.
type Storages struct {
	Documents DocumentGateway
}

// NewStorages constructs the process-wide storage set.
//
// Store initialization is deliberately fail-soft: when the connection
// settings are missing or the initial connection attempt fails, the service
// still starts and the Documents gateway is replaced by the unavailable
// implementation, whose every operation reports [ErrNotConfigured]. The
// diagnostics endpoint surfaces the degraded state to callers.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) *Storages {
	if !cfg.DB.Configured() {
		log.Warn().Str("func", "NewStorages").Msg("document store is not configured, starting without persistence")
		return &Storages{Documents: NewUnavailableGateway()}
	}

	db, err := NewConnectMongo(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("document store connection failed, starting without persistence")
		return &Storages{Documents: NewUnavailableGateway()}
	}

	return &Storages{Documents: db}
}

// unavailableGateway is the explicit "store absent" implementation of
// [DocumentGateway]. Returning it instead of a nil gateway forces downstream
// code to handle absence through [ErrNotConfigured] rather than risking a
// nil dereference.
type unavailableGateway struct{}

// NewUnavailableGateway returns a [DocumentGateway] whose every operation
// fails with [ErrNotConfigured].
func NewUnavailableGateway() DocumentGateway {
	return unavailableGateway{}
}

func (unavailableGateway) CreateDocument(ctx context.Context, collection string, document any) (string, error) {
	return "", ErrNotConfigured
}

func (unavailableGateway) GetDocuments(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	return nil, ErrNotConfigured
}

func (unavailableGateway) ListCollections(ctx context.Context, limit int) ([]string, error) {
	return nil, ErrNotConfigured
}

func (unavailableGateway) DatabaseName() string {
	return ""
}

func (unavailableGateway) Available() bool {
	return false
}
