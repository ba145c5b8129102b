package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/dto"
	"github.com/noah-isme/studio-catalog/internal/models"
)

// TeacherQuery fetches raw teacher records from the catalog store. GetTeacher
// returns nil without error when nothing matches.
type TeacherQuery interface {
	ListTeachers(ctx context.Context, filter models.Filter) ([]models.RawTeacherRecord, error)
	GetTeacher(ctx context.Context, id int64) (*models.RawTeacherRecord, error)
}

// TeacherState is the observable state of a TeacherStore.
type TeacherState = State[models.Teacher]

// TeacherStore orchestrates teacher fetches and keeps the resulting state.
type TeacherStore struct {
	query TeacherQuery
	core  *storeCore[models.Teacher]
}

// NewTeacherStore constructs a TeacherStore.
func NewTeacherStore(query TeacherQuery, publisher SnapshotPublisher, metrics *MetricsService, logger *zap.Logger) *TeacherStore {
	return &TeacherStore{
		query: query,
		core:  newStoreCore[models.Teacher](models.KindTeacher, publisher, metrics, logger),
	}
}

// FetchAll replaces Items with every teacher.
func (s *TeacherStore) FetchAll(ctx context.Context) TeacherState {
	return runFetch(ctx, s.core, models.OpListAll,
		func(ctx context.Context) ([]models.RawTeacherRecord, error) {
			return s.query.ListTeachers(ctx, models.Filter{})
		},
		func(st *TeacherState, raws []models.RawTeacherRecord) {
			st.Items = NormalizeTeachers(raws)
		})
}

// FetchHighlighted replaces Filtered with teachers leading a highlighted activity.
func (s *TeacherStore) FetchHighlighted(ctx context.Context) TeacherState {
	return runFetch(ctx, s.core, models.OpListFiltered,
		func(ctx context.Context) ([]models.RawTeacherRecord, error) {
			return s.query.ListTeachers(ctx, models.Filter{HighlightedOnly: true})
		},
		func(st *TeacherState, raws []models.RawTeacherRecord) {
			st.Filtered = NormalizeTeachers(raws)
		})
}

// FetchByID loads one teacher into Selected.
func (s *TeacherStore) FetchByID(ctx context.Context, id int64) TeacherState {
	return runFetch(ctx, s.core, models.OpGetByID,
		func(ctx context.Context) (*models.RawTeacherRecord, error) {
			return s.query.GetTeacher(ctx, id)
		},
		func(st *TeacherState, raw *models.RawTeacherRecord) {
			if raw == nil {
				return
			}
			teacher := NormalizeTeacher(*raw)
			st.Selected = &teacher
		})
}

// Snapshot returns the current state.
func (s *TeacherStore) Snapshot() TeacherState {
	return s.core.snapshot()
}

// Cards projects the current Items into teacher cards.
func (s *TeacherStore) Cards() []dto.TeacherCardItem {
	return TeachersToCardItems(s.Snapshot().Items)
}

// DetailedCards projects the current Items into teacher cards with activities.
func (s *TeacherStore) DetailedCards() []dto.TeacherCardItemWithActivities {
	return TeachersToCardItemsWithActivities(s.Snapshot().Items)
}

// HighlightedCards projects the current Filtered slot into teacher cards.
func (s *TeacherStore) HighlightedCards() []dto.TeacherCardItem {
	return TeachersToCardItems(s.Snapshot().Filtered)
}
