package store

import (
	"context"
	"testing"

	"github.com/mkarpenko/credvault/internal/config"
	"github.com/mkarpenko/credvault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// unavailable gateway
// ─────────────────────────────────────────────

func TestUnavailableGateway_AllOperationsFail(t *testing.T) {
	gw := NewUnavailableGateway()

	id, err := gw.CreateDocument(context.Background(), "credential", map[string]string{"title": "x"})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, id)

	docs, err := gw.GetDocuments(context.Background(), "credential", MatchAll())
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, docs)

	names, err := gw.ListCollections(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, names)
}

func TestUnavailableGateway_ReportsAbsence(t *testing.T) {
	gw := NewUnavailableGateway()

	assert.False(t, gw.Available())
	assert.Empty(t, gw.DatabaseName())
}

// ─────────────────────────────────────────────
// NewStorages
// ─────────────────────────────────────────────

func TestNewStorages_UnconfiguredFallsBackToUnavailable(t *testing.T) {
	storages := NewStorages(context.Background(), config.Storage{}, logger.Nop())

	require.NotNil(t, storages)
	require.NotNil(t, storages.Documents, "gateway must never be nil")
	assert.False(t, storages.Documents.Available())
}

func TestNewStorages_PartialConfigFallsBackToUnavailable(t *testing.T) {
	cfg := config.Storage{DB: config.DB{URL: "mongodb://localhost:27017"}}

	storages := NewStorages(context.Background(), cfg, logger.Nop())

	require.NotNil(t, storages.Documents)
	assert.False(t, storages.Documents.Available())
}
