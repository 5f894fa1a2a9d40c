package service

import (
	"context"

	"github.com/mkarpenko/credvault/internal/config"
	"github.com/mkarpenko/credvault/internal/logger"
	"github.com/mkarpenko/credvault/internal/store"
	"github.com/mkarpenko/credvault/models"
)

// Diagnostic status texts. Kept byte-compatible with the payloads the
// existing frontend already consumes, including the emoji markers.
const (
	statusBackendRunning    = "✅ Running"
	statusDBNotAvailable    = "❌ Not Available"
	statusDBAvailable       = "✅ Available"
	statusDBWorking         = "✅ Connected & Working"
	statusDBConnectedErrPfx = "⚠️  Connected but Error: "
	statusEnvSet            = "✅ Set"
	statusEnvNotSet         = "❌ Not Set"
	statusConnected         = "Connected"
	statusNotConnected      = "Not Connected"
)

// maxCollections caps how many collection names the report carries.
const maxCollections = 10

// maxErrorTextLen caps the length of an error text folded into the database
// status field.
const maxErrorTextLen = 50

type diagnosticsService struct {
	documents store.DocumentGateway

	logger *logger.Logger
}

// NewDiagnosticsService constructs a [DiagnosticsService] probing the given
// document gateway.
func NewDiagnosticsService(documents store.DocumentGateway, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		documents: documents,
		logger:    logger,
	}
}

// Report runs each probe independently; no probe failure may abort the
// others or escape the method.
func (s *diagnosticsService) Report(ctx context.Context) models.DiagnosticsReport {
	log := logger.FromContext(ctx)

	report := models.DiagnosticsReport{
		Backend:          statusBackendRunning,
		Database:         statusDBNotAvailable,
		ConnectionStatus: statusNotConnected,
		Collections:      []string{},
	}

	// probe 1: is there a live store handle at all?
	if s.documents.Available() {
		report.Database = statusDBAvailable
		report.ConnectionStatus = statusConnected

		// probe 2: is the database actually reachable?
		names, err := s.documents.ListCollections(ctx, maxCollections)
		if err != nil {
			log.Err(err).Str("func", "diagnosticsService.Report").Msg("collections probe failed")
			report.Database = statusDBConnectedErrPfx + truncateErrorText(err.Error())
		} else {
			report.Database = statusDBWorking
			report.Collections = names
			if report.Collections == nil {
				report.Collections = []string{}
			}
		}
	}

	// probe 3: raw environment presence, independent of the handle state
	urlSet, nameSet := config.EnvPresence()
	report.DatabaseURL = envStatus(urlSet)
	report.DatabaseName = envStatus(nameSet)

	return report
}

func envStatus(set bool) string {
	if set {
		return statusEnvSet
	}
	return statusEnvNotSet
}

// truncateErrorText limits an error text to maxErrorTextLen runes so a long
// driver error cannot bloat the status field.
func truncateErrorText(text string) string {
	runes := []rune(text)
	if len(runes) <= maxErrorTextLen {
		return text
	}
	return string(runes[:maxErrorTextLen])
}
