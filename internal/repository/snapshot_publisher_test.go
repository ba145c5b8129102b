package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/studio-catalog/internal/models"
)

func TestSnapshotPublisherChannel(t *testing.T) {
	p := NewSnapshotPublisher(nil, "", zap.NewNop())
	assert.Equal(t, "catalog:activity", p.Channel(models.KindActivity))

	p = NewSnapshotPublisher(nil, "studio", nil)
	assert.Equal(t, "studio:teacher", p.Channel(models.KindTeacher))
}

func TestSnapshotPublisherWithoutClientIsNoop(t *testing.T) {
	p := NewSnapshotPublisher(nil, "catalog", zap.NewNop())
	err := p.Publish(context.Background(), models.StateEvent{Kind: models.KindActivity, Operation: models.OpListAll})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestSnapshotPublisherReportsTransportErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	p := NewSnapshotPublisher(client, "catalog", zap.NewNop())
	defer p.Close()

	err := p.Publish(context.Background(), models.StateEvent{Kind: models.KindTeacher, Operation: models.OpGetByID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis publish catalog:teacher")
}
