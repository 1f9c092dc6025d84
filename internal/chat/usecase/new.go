package usecase

import (
	"lead-intake-agent/internal/extractor"
	"lead-intake-agent/internal/observability/metrics"
	"lead-intake-agent/internal/session"
	pkgLog "lead-intake-agent/pkg/log"
)

type implUseCase struct {
	l             pkgLog.Logger
	sessions      session.Store
	extractor     extractor.Extractor
	metrics       *metrics.LeadMetrics
	historyWindow int
	newID         func() string
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	sessions session.Store,
	ex extractor.Extractor,
	m *metrics.LeadMetrics,
	historyWindow int,
) *implUseCase {
	if historyWindow <= 0 {
		historyWindow = DefaultHistoryWindow
	}
	return &implUseCase{
		l:             l,
		sessions:      sessions,
		extractor:     ex,
		metrics:       m,
		historyWindow: historyWindow,
		newID:         newUserID,
	}
}
