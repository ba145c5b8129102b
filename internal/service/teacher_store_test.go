package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/studio-catalog/pkg/errors"

	"github.com/noah-isme/studio-catalog/internal/models"
)

type fakeTeacherQuery struct {
	list func(ctx context.Context, filter models.Filter) ([]models.RawTeacherRecord, error)
	get  func(ctx context.Context, id int64) (*models.RawTeacherRecord, error)
}

func (f *fakeTeacherQuery) ListTeachers(ctx context.Context, filter models.Filter) ([]models.RawTeacherRecord, error) {
	return f.list(ctx, filter)
}

func (f *fakeTeacherQuery) GetTeacher(ctx context.Context, id int64) (*models.RawTeacherRecord, error) {
	return f.get(ctx, id)
}

func sampleTeachers() []models.RawTeacherRecord {
	return []models.RawTeacherRecord{
		{
			TeacherID: 1, Name: "Ana", Surname: "Lopez", ShortCV: "Hatha specialist",
			TeacherActivities: []models.RawTeacherSlot{
				{Time: "10:00 AM", Days: []string{"Monday"}, Activity: &models.RawActivitySummary{ActivityID: 3, Title: "Hatha", Highlighted: true}},
			},
		},
		{TeacherID: 2, Name: "Ben", Surname: "Ortiz"},
	}
}

func TestTeacherStoreFetchAllAndCards(t *testing.T) {
	query := &fakeTeacherQuery{list: func(context.Context, models.Filter) ([]models.RawTeacherRecord, error) {
		return sampleTeachers(), nil
	}}
	store := NewTeacherStore(query, nil, nil, zap.NewNop())

	state := store.FetchAll(context.Background())
	require.Len(t, state.Items, 2)
	assert.Equal(t, "Ana Lopez", state.Items[0].FullName)

	cards := store.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "Ben Ortiz", cards[1].FullName)

	detailed := store.DetailedCards()
	require.Len(t, detailed, 2)
	assert.Equal(t, "Hatha", detailed[0].Activities[0].Title)
	assert.Empty(t, detailed[1].Activities)
}

func TestTeacherStoreFetchHighlighted(t *testing.T) {
	var seen models.Filter
	query := &fakeTeacherQuery{list: func(_ context.Context, filter models.Filter) ([]models.RawTeacherRecord, error) {
		seen = filter
		return sampleTeachers()[:1], nil
	}}
	store := NewTeacherStore(query, nil, nil, nil)

	state := store.FetchHighlighted(context.Background())
	assert.True(t, seen.HighlightedOnly)
	assert.Empty(t, state.Items)
	require.Len(t, state.Filtered, 1)
	assert.Len(t, store.HighlightedCards(), 1)
}

func TestTeacherStoreFetchByIDMiss(t *testing.T) {
	query := &fakeTeacherQuery{get: func(context.Context, int64) (*models.RawTeacherRecord, error) {
		return nil, nil
	}}
	store := NewTeacherStore(query, nil, nil, nil)

	state := store.FetchByID(context.Background(), 5)
	assert.Nil(t, state.Selected)
	assert.Nil(t, state.LastError)
}

func TestTeacherStoreFetchByIDClearsPreviousSelection(t *testing.T) {
	calls := 0
	query := &fakeTeacherQuery{get: func(context.Context, int64) (*models.RawTeacherRecord, error) {
		calls++
		if calls == 1 {
			raw := sampleTeachers()[0]
			return &raw, nil
		}
		return nil, appErrors.Clone(appErrors.ErrQueryFailed, "timeout")
	}}
	store := NewTeacherStore(query, nil, nil, nil)

	state := store.FetchByID(context.Background(), 1)
	require.NotNil(t, state.Selected)

	state = store.FetchByID(context.Background(), 2)
	assert.Nil(t, state.Selected)
	require.NotNil(t, state.LastError)
	assert.Equal(t, "timeout", state.LastError.Message)
}

func TestTeacherStoreErrorMessage(t *testing.T) {
	query := &fakeTeacherQuery{list: func(context.Context, models.Filter) ([]models.RawTeacherRecord, error) {
		return nil, errors.New("permission denied for table teachers")
	}}
	store := NewTeacherStore(query, nil, nil, nil)

	state := store.FetchAll(context.Background())
	require.NotNil(t, state.LastError)
	assert.Equal(t, "permission denied for table teachers", state.LastError.Message)
	assert.Empty(t, state.Items)
}

func TestCatalogServiceHandsOutIndependentStores(t *testing.T) {
	activities := &fakeActivityQuery{list: func(context.Context, models.Filter) ([]models.RawActivityRecord, error) {
		return sampleActivities(), nil
	}}
	teachers := &fakeTeacherQuery{list: func(context.Context, models.Filter) ([]models.RawTeacherRecord, error) {
		return sampleTeachers(), nil
	}}
	svc := NewCatalogService(activities, teachers, nil, nil, nil)

	first := svc.ActivityStore(nil)
	second := svc.ActivityStore(zap.NewNop())
	first.FetchAll(context.Background())
	assert.Len(t, first.Snapshot().Items, 2)
	assert.Empty(t, second.Snapshot().Items)

	teacherStore := svc.TeacherStore(nil)
	assert.Len(t, teacherStore.FetchAll(context.Background()).Items, 2)
}
