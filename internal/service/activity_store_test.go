package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/models"
	appErrors "github.com/noah-isme/studio-catalog/pkg/errors"
)

type fakeActivityQuery struct {
	list func(ctx context.Context, filter models.Filter) ([]models.RawActivityRecord, error)
	get  func(ctx context.Context, id int64) (*models.RawActivityRecord, error)
}

func (f *fakeActivityQuery) ListActivities(ctx context.Context, filter models.Filter) ([]models.RawActivityRecord, error) {
	return f.list(ctx, filter)
}

func (f *fakeActivityQuery) GetActivity(ctx context.Context, id int64) (*models.RawActivityRecord, error) {
	return f.get(ctx, id)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.StateEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event models.StateEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) snapshots() []ActivityState {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ActivityState, 0, len(p.events))
	for _, e := range p.events {
		if st, ok := e.State.(ActivityState); ok {
			out = append(out, st)
		}
	}
	return out
}

func sampleActivities() []models.RawActivityRecord {
	return []models.RawActivityRecord{
		{ActivityID: 1, Title: "Hatha", Description: "Slow flow", Highlighted: true, DifficultyLevel: intPtr(2)},
		{ActivityID: 2, Title: "Yin", Description: "Long holds"},
	}
}

func TestActivityStoreInitialState(t *testing.T) {
	store := NewActivityStore(&fakeActivityQuery{}, nil, nil, nil)
	state := store.Snapshot()
	assert.NotNil(t, state.Items)
	assert.NotNil(t, state.Filtered)
	assert.Empty(t, state.Items)
	assert.Nil(t, state.Selected)
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.LastError)
}

func TestActivityStoreFetchAll(t *testing.T) {
	var seen models.Filter
	query := &fakeActivityQuery{list: func(_ context.Context, filter models.Filter) ([]models.RawActivityRecord, error) {
		seen = filter
		return sampleActivities(), nil
	}}
	publisher := &recordingPublisher{}
	store := NewActivityStore(query, publisher, nil, zap.NewNop())

	state := store.FetchAll(context.Background())
	assert.False(t, seen.HighlightedOnly)
	require.Len(t, state.Items, 2)
	assert.Equal(t, "Hatha", state.Items[0].Title)
	assert.Equal(t, 1, state.Items[1].DifficultyLevel)
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.LastError)
	assert.Empty(t, state.Filtered)

	snaps := publisher.snapshots()
	require.Len(t, snaps, 2)
	assert.True(t, snaps[0].IsLoading)
	assert.False(t, snaps[1].IsLoading)
	assert.Len(t, snaps[1].Items, 2)

	cards := store.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "primary", cards[0].ColorVariant)
	assert.Equal(t, "secondary", cards[1].ColorVariant)
}

func TestActivityStoreFetchAllEmpty(t *testing.T) {
	query := &fakeActivityQuery{list: func(context.Context, models.Filter) ([]models.RawActivityRecord, error) {
		return nil, nil
	}}
	store := NewActivityStore(query, nil, nil, nil)

	state := store.FetchAll(context.Background())
	assert.NotNil(t, state.Items)
	assert.Empty(t, state.Items)
	assert.Nil(t, state.LastError)
}

func TestActivityStoreFetchHighlightedLeavesItems(t *testing.T) {
	query := &fakeActivityQuery{list: func(_ context.Context, filter models.Filter) ([]models.RawActivityRecord, error) {
		if filter.HighlightedOnly {
			return sampleActivities()[:1], nil
		}
		return sampleActivities(), nil
	}}
	store := NewActivityStore(query, nil, nil, nil)

	store.FetchAll(context.Background())
	state := store.FetchHighlighted(context.Background())
	assert.Len(t, state.Items, 2)
	require.Len(t, state.Filtered, 1)
	assert.True(t, state.Filtered[0].Highlighted)
	assert.Len(t, store.HighlightedCards(), 1)
}

func TestActivityStoreFetchByID(t *testing.T) {
	query := &fakeActivityQuery{get: func(_ context.Context, id int64) (*models.RawActivityRecord, error) {
		if id == 1 {
			raw := sampleActivities()[0]
			return &raw, nil
		}
		return nil, nil
	}}
	store := NewActivityStore(query, nil, nil, nil)

	state := store.FetchByID(context.Background(), 1)
	require.NotNil(t, state.Selected)
	assert.Equal(t, int64(1), state.Selected.ID)

	state = store.FetchByID(context.Background(), 99)
	assert.Nil(t, state.Selected)
	assert.Nil(t, state.LastError)
	assert.False(t, state.IsLoading)
}

func TestActivityStoreErrorKeepsPreviousData(t *testing.T) {
	fail := false
	query := &fakeActivityQuery{list: func(context.Context, models.Filter) ([]models.RawActivityRecord, error) {
		if fail {
			return nil, errors.New("network down")
		}
		return sampleActivities(), nil
	}}
	metrics := NewMetricsService()
	store := NewActivityStore(query, nil, metrics, nil)

	store.FetchAll(context.Background())
	fail = true
	state := store.FetchAll(context.Background())
	require.NotNil(t, state.LastError)
	assert.Equal(t, appErrors.ErrQueryFailed.Code, state.LastError.Code)
	assert.Equal(t, "network down", state.LastError.Message)
	assert.Len(t, state.Items, 2)
	assert.False(t, state.IsLoading)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.fetchTotal.WithLabelValues("activity", "list_all", "error")))

	fail = false
	state = store.FetchAll(context.Background())
	assert.Nil(t, state.LastError)
	assert.Len(t, state.Items, 2)
}

func TestActivityStorePanicBecomesQueryFailure(t *testing.T) {
	query := &fakeActivityQuery{get: func(context.Context, int64) (*models.RawActivityRecord, error) {
		panic("decoder exploded")
	}}
	store := NewActivityStore(query, nil, nil, nil)

	state := store.FetchByID(context.Background(), 1)
	require.NotNil(t, state.LastError)
	assert.Equal(t, appErrors.ErrQueryFailed.Code, state.LastError.Code)
	assert.Contains(t, state.LastError.Message, "decoder exploded")
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.Selected)
}

func TestActivityStoreDiscardsStaleResults(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	query := &fakeActivityQuery{list: func(_ context.Context, filter models.Filter) ([]models.RawActivityRecord, error) {
		if !filter.HighlightedOnly {
			close(started)
			<-release
			return sampleActivities(), nil
		}
		return sampleActivities()[:1], nil
	}}
	metrics := NewMetricsService()
	store := NewActivityStore(query, nil, metrics, nil)

	done := make(chan ActivityState)
	go func() {
		done <- store.FetchAll(context.Background())
	}()
	<-started

	latest := store.FetchHighlighted(context.Background())
	require.Len(t, latest.Filtered, 1)
	assert.False(t, latest.IsLoading)

	close(release)
	stale := <-done
	assert.Empty(t, stale.Items)
	assert.Equal(t, latest.Generation, stale.Generation)
	assert.Empty(t, store.Snapshot().Items)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.staleResults.WithLabelValues("activity", "list_all")))
}

func TestActivityStorePublishFailureDoesNotFailFetch(t *testing.T) {
	query := &fakeActivityQuery{list: func(context.Context, models.Filter) ([]models.RawActivityRecord, error) {
		return sampleActivities(), nil
	}}
	metrics := NewMetricsService()
	store := NewActivityStore(query, &recordingPublisher{err: errors.New("redis down")}, metrics, nil)

	state := store.FetchAll(context.Background())
	assert.Nil(t, state.LastError)
	assert.Len(t, state.Items, 2)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.snapshotFailures))
}
