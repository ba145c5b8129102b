package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/dto"
	"github.com/noah-isme/studio-catalog/internal/models"
)

// ActivityQuery fetches raw activity records from the catalog store. GetActivity
// returns nil without error when nothing matches.
type ActivityQuery interface {
	ListActivities(ctx context.Context, filter models.Filter) ([]models.RawActivityRecord, error)
	GetActivity(ctx context.Context, id int64) (*models.RawActivityRecord, error)
}

// ActivityState is the observable state of an ActivityStore.
type ActivityState = State[models.Activity]

// ActivityStore orchestrates activity fetches and keeps the resulting state.
type ActivityStore struct {
	query ActivityQuery
	core  *storeCore[models.Activity]
}

// NewActivityStore constructs an ActivityStore.
func NewActivityStore(query ActivityQuery, publisher SnapshotPublisher, metrics *MetricsService, logger *zap.Logger) *ActivityStore {
	return &ActivityStore{
		query: query,
		core:  newStoreCore[models.Activity](models.KindActivity, publisher, metrics, logger),
	}
}

// FetchAll replaces Items with every activity.
func (s *ActivityStore) FetchAll(ctx context.Context) ActivityState {
	return runFetch(ctx, s.core, models.OpListAll,
		func(ctx context.Context) ([]models.RawActivityRecord, error) {
			return s.query.ListActivities(ctx, models.Filter{})
		},
		func(st *ActivityState, raws []models.RawActivityRecord) {
			st.Items = NormalizeActivities(raws)
		})
}

// FetchHighlighted replaces Filtered with highlighted activities.
func (s *ActivityStore) FetchHighlighted(ctx context.Context) ActivityState {
	return runFetch(ctx, s.core, models.OpListFiltered,
		func(ctx context.Context) ([]models.RawActivityRecord, error) {
			return s.query.ListActivities(ctx, models.Filter{HighlightedOnly: true})
		},
		func(st *ActivityState, raws []models.RawActivityRecord) {
			st.Filtered = NormalizeActivities(raws)
		})
}

// FetchByID loads one activity into Selected. A missing activity leaves Selected
// nil and is not an error.
func (s *ActivityStore) FetchByID(ctx context.Context, id int64) ActivityState {
	return runFetch(ctx, s.core, models.OpGetByID,
		func(ctx context.Context) (*models.RawActivityRecord, error) {
			return s.query.GetActivity(ctx, id)
		},
		func(st *ActivityState, raw *models.RawActivityRecord) {
			if raw == nil {
				return
			}
			activity := NormalizeActivity(*raw)
			st.Selected = &activity
		})
}

// Snapshot returns the current state.
func (s *ActivityStore) Snapshot() ActivityState {
	return s.core.snapshot()
}

// Cards projects the current Items into class cards.
func (s *ActivityStore) Cards() []dto.ClassCardItem {
	return ActivitiesToClassCards(s.Snapshot().Items)
}

// HighlightedCards projects the current Filtered slot into class cards.
func (s *ActivityStore) HighlightedCards() []dto.ClassCardItem {
	return ActivitiesToClassCards(s.Snapshot().Filtered)
}
