package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/barber-appointments/internal/domain/appointment"
)

// NewRedisClient pings addr before handing the client out.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// SlotCache keeps the occupied slots of one barber-day as a JSON list next to
// a generation counter bumped by Invalidate. Redis failures degrade to cache
// misses.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ domain.SlotCache = (*SlotCache)(nil)

// genTTL outlives any entry so a generation cannot reset while a read that
// observed it is still in flight.
const genTTL = 24 * time.Hour

var errStaleGeneration = errors.New("slot cache generation moved")

func NewSlotCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *SlotCache {
	return &SlotCache{client: client, ttl: ttl, logger: logger}
}

func slotKey(barberID, day string) string {
	return "occupied:" + barberID + ":" + day
}

func genKey(barberID, day string) string {
	return "occupied:gen:" + barberID + ":" + day
}

func (c *SlotCache) Get(ctx context.Context, barberID, day string) ([]domain.TimeSlot, int64, bool) {
	vals, err := c.client.MGet(ctx, slotKey(barberID, day), genKey(barberID, day)).Result()
	if err != nil {
		c.logger.Warn("slot cache get failed", slog.String("barber_id", barberID), slog.Any("error", err))
		return nil, -1, false
	}

	var gen int64
	if s, ok := vals[1].(string); ok {
		if gen, err = strconv.ParseInt(s, 10, 64); err != nil {
			return nil, -1, false
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, gen, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		c.logger.Warn("slot cache entry unreadable", slog.String("barber_id", barberID), slog.Any("error", err))
		return nil, gen, false
	}
	return slots, gen, true
}

// Set writes slots under WATCH of the generation key and gives up when the
// generation differs from gen. A negative gen never stores.
func (c *SlotCache) Set(ctx context.Context, barberID, day string, gen int64, slots []domain.TimeSlot) {
	if gen < 0 {
		return
	}
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	gk := genKey(barberID, day)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, gk).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if cur != gen {
			return errStaleGeneration
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, slotKey(barberID, day), raw, c.ttl)
			return nil
		})
		return err
	}, gk)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.logger.Debug("slot cache set skipped", slog.String("barber_id", barberID), slog.String("day", day))
	default:
		c.logger.Warn("slot cache set failed", slog.String("barber_id", barberID), slog.Any("error", err))
	}
}

func (c *SlotCache) Invalidate(ctx context.Context, barberID string, days ...string) {
	if len(days) == 0 {
		return
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, d := range days {
			pipe.Incr(ctx, genKey(barberID, d))
			pipe.Expire(ctx, genKey(barberID, d), genTTL)
			pipe.Del(ctx, slotKey(barberID, d))
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("slot cache invalidate failed", slog.String("barber_id", barberID), slog.Any("error", err))
	}
}
