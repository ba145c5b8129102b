package service

import (
	"go.uber.org/zap"
)

// CatalogService hands out stores wired to the shared collaborators. Stores are
// cheap; HTTP handlers take one per request so concurrent requests never share state.
type CatalogService struct {
	activities ActivityQuery
	teachers   TeacherQuery
	publisher  SnapshotPublisher
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(activities ActivityQuery, teachers TeacherQuery, publisher SnapshotPublisher, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		activities: activities,
		teachers:   teachers,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
	}
}

// ActivityStore returns a fresh activity store. A nil logger falls back to the service logger.
func (s *CatalogService) ActivityStore(logger *zap.Logger) *ActivityStore {
	return NewActivityStore(s.activities, s.publisher, s.metrics, s.loggerOr(logger))
}

// TeacherStore returns a fresh teacher store.
func (s *CatalogService) TeacherStore(logger *zap.Logger) *TeacherStore {
	return NewTeacherStore(s.teachers, s.publisher, s.metrics, s.loggerOr(logger))
}

func (s *CatalogService) loggerOr(logger *zap.Logger) *zap.Logger {
	if logger != nil {
		return logger
	}
	return s.logger
}
