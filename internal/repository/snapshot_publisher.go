package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/models"
)

// SnapshotPublisher pushes store state transitions to Redis pub/sub channels,
// one channel per entity kind. Nothing is stored; subscribers only see live events.
type SnapshotPublisher struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewSnapshotPublisher constructs a publisher. A nil client turns Publish into a no-op.
func NewSnapshotPublisher(client *redis.Client, prefix string, logger *zap.Logger) *SnapshotPublisher {
	if prefix == "" {
		prefix = "catalog"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotPublisher{client: client, prefix: prefix, logger: logger}
}

// Channel returns the pub/sub channel for an entity kind.
func (p *SnapshotPublisher) Channel(kind models.EntityKind) string {
	return fmt.Sprintf("%s:%s", p.prefix, kind)
}

// Publish serialises the event and sends it on the kind's channel.
func (p *SnapshotPublisher) Publish(ctx context.Context, event models.StateEvent) error {
	if p.client == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal snapshot for %s: %w", event.Kind, err)
	}

	channel := p.Channel(event.Kind)
	receivers, err := p.client.Publish(ctx, channel, payload).Result()
	if err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	p.logger.Debug("published store snapshot",
		zap.String("channel", channel),
		zap.String("operation", string(event.Operation)),
		zap.Int64("receivers", receivers))
	return nil
}

// Close releases the underlying Redis connection if present.
func (p *SnapshotPublisher) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}
