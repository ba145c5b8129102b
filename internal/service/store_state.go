package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/models"
	appErrors "github.com/noah-isme/studio-catalog/pkg/errors"
)

// State is an immutable snapshot of a store. Entities inside are never mutated
// after normalization, so snapshots share slices safely.
type State[T any] struct {
	Items      []T              `json:"items"`
	Filtered   []T              `json:"filtered"`
	Selected   *T               `json:"selected"`
	IsLoading  bool             `json:"isLoading"`
	LastError  *appErrors.Error `json:"lastError"`
	Generation uint64           `json:"generation"`
}

// SnapshotPublisher receives store transitions for reactive consumers.
type SnapshotPublisher interface {
	Publish(ctx context.Context, event models.StateEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, models.StateEvent) error { return nil }

// storeCore owns the load/error/data lifecycle shared by all entity stores.
// Every operation takes a new generation; only the latest one may write results.
type storeCore[T any] struct {
	kind      models.EntityKind
	publisher SnapshotPublisher
	metrics   *MetricsService
	logger    *zap.Logger

	mu         sync.Mutex
	generation uint64
	state      State[T]
}

func newStoreCore[T any](kind models.EntityKind, publisher SnapshotPublisher, metrics *MetricsService, logger *zap.Logger) *storeCore[T] {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &storeCore[T]{
		kind:      kind,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger.With(zap.String("kind", string(kind))),
		state:     State[T]{Items: []T{}, Filtered: []T{}},
	}
}

func (c *storeCore[T]) snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *storeCore[T]) begin(ctx context.Context, op models.FetchOperation) uint64 {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state.IsLoading = true
	c.state.LastError = nil
	if op == models.OpGetByID {
		c.state.Selected = nil
	}
	c.state.Generation = gen
	snap := c.state
	c.mu.Unlock()

	c.publish(ctx, op, snap)
	return gen
}

func (c *storeCore[T]) finish(ctx context.Context, op models.FetchOperation, gen uint64, started time.Time, appErr *appErrors.Error, apply func(*State[T])) State[T] {
	duration := time.Since(started)

	c.mu.Lock()
	if gen != c.generation {
		snap := c.state
		c.mu.Unlock()
		c.metrics.RecordStaleResult(string(c.kind), string(op))
		c.logger.Debug("discarding stale fetch result",
			zap.String("operation", string(op)),
			zap.Uint64("generation", gen),
			zap.Uint64("latest_generation", snap.Generation))
		return snap
	}
	if appErr != nil {
		c.state.LastError = appErr
	} else {
		apply(&c.state)
	}
	c.state.IsLoading = false
	snap := c.state
	c.mu.Unlock()

	outcome := "success"
	if appErr != nil {
		outcome = "error"
		c.logger.Error("catalog fetch failed",
			zap.String("operation", string(op)),
			zap.String("code", appErr.Code),
			zap.Error(appErr))
	}
	c.metrics.ObserveFetch(string(c.kind), string(op), outcome, duration)
	c.publish(ctx, op, snap)
	return snap
}

func (c *storeCore[T]) publish(ctx context.Context, op models.FetchOperation, snap State[T]) {
	event := models.StateEvent{Kind: c.kind, Operation: op, State: snap, At: time.Now().UTC()}
	if err := c.publisher.Publish(ctx, event); err != nil {
		c.metrics.RecordSnapshotPublishFailure()
		c.logger.Warn("publish store snapshot failed", zap.String("operation", string(op)), zap.Error(err))
	}
}

// runFetch drives one operation through loading and then success or error.
func runFetch[T any, R any](ctx context.Context, c *storeCore[T], op models.FetchOperation, query func(context.Context) (R, error), apply func(*State[T], R)) State[T] {
	gen := c.begin(ctx, op)
	started := time.Now()
	result, appErr := callQuery(ctx, query)
	return c.finish(ctx, op, gen, started, appErr, func(s *State[T]) {
		apply(s, result)
	})
}

// callQuery turns collaborator errors and panics into a uniform *appErrors.Error.
func callQuery[R any](ctx context.Context, query func(context.Context) (R, error)) (result R, appErr *appErrors.Error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			appErr = appErrors.FromPanic(recovered)
		}
	}()
	res, err := query(ctx)
	if err != nil {
		return result, appErrors.AsQueryFailure(err)
	}
	return res, nil
}
