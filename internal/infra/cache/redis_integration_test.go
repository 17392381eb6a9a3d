//go:build integration

package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

func startRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestSlotCache_RoundTripAndInvalidate(t *testing.T) {
	ctx := context.Background()
	client, err := NewRedisClient(ctx, startRedis(t), "", 0)
	require.NoError(t, err)
	defer client.Close()

	c := NewSlotCache(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, gen, ok := c.Get(ctx, "b1", "2026-03-02")
	assert.False(t, ok)
	assert.Equal(t, int64(0), gen)

	start := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
	slots := []domain.TimeSlot{{Start: start, End: start.Add(30 * time.Minute)}}
	c.Set(ctx, "b1", "2026-03-02", gen, slots)

	got, _, ok := c.Get(ctx, "b1", "2026-03-02")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(start))

	c.Invalidate(ctx, "b1", "2026-03-02", "2026-03-03")
	_, gen, ok = c.Get(ctx, "b1", "2026-03-02")
	assert.False(t, ok)
	assert.Equal(t, int64(1), gen)
}

func TestSlotCache_SetAfterInvalidateIsDropped(t *testing.T) {
	ctx := context.Background()
	client, err := NewRedisClient(ctx, startRedis(t), "", 0)
	require.NoError(t, err)
	defer client.Close()

	c := NewSlotCache(client, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// A reader misses, a writer commits and invalidates, then the reader
	// tries to store what it read before the commit.
	_, gen, ok := c.Get(ctx, "b1", "2026-03-02")
	require.False(t, ok)

	c.Invalidate(ctx, "b1", "2026-03-02")

	start := time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)
	c.Set(ctx, "b1", "2026-03-02", gen, []domain.TimeSlot{{Start: start, End: start.Add(time.Hour)}})

	_, gen, ok = c.Get(ctx, "b1", "2026-03-02")
	assert.False(t, ok)

	c.Set(ctx, "b1", "2026-03-02", gen, []domain.TimeSlot{})
	got, _, ok := c.Get(ctx, "b1", "2026-03-02")
	assert.True(t, ok)
	assert.Empty(t, got)
}
