package storage

import (
	"context"
	"time"

	"canteen/events"

	"github.com/redis/go-redis/v9"
)

const seenPrefix = "agg:seen:"

// Store keeps the per-day sales aggregates in Redis.
type Store struct {
	rdb *redis.Client
	// TTL bounds the lifetime of daily keys and processed-event markers.
	TTL time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, TTL: ttl}
}

// MarkProcessed reports whether the event key was seen for the first time.
func (s *Store) MarkProcessed(ctx context.Context, eventKey string) (bool, error) {
	return s.rdb.SetNX(ctx, seenPrefix+eventKey, 1, s.TTL).Result()
}

// UnmarkProcessed releases a marker so a redelivery of the event is applied.
func (s *Store) UnmarkProcessed(ctx context.Context, eventKey string) error {
	return s.rdb.Del(ctx, seenPrefix+eventKey).Err()
}

func (s *Store) expire(ctx context.Context, pipe redis.Pipeliner, keys ...string) {
	if s.TTL <= 0 {
		return
	}
	for _, key := range keys {
		pipe.Expire(ctx, key, s.TTL)
	}
}

func (s *Store) RecordOrder(ctx context.Context, day string, total float64, lines []events.OrderLine) error {
	salesKey := events.DailySalesKey(day)
	itemsKey := events.DailyItemsKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		var sold int64
		for _, line := range lines {
			if line.Quantity <= 0 {
				continue
			}
			pipe.ZIncrBy(ctx, itemsKey, float64(line.Quantity), line.MenuItemID)
			if line.Name != "" {
				pipe.HSet(ctx, events.ItemNamesKey, line.MenuItemID, line.Name)
			}
			sold += int64(line.Quantity)
		}
		pipe.HIncrByFloat(ctx, salesKey, events.FieldRevenue, total)
		pipe.HIncrBy(ctx, salesKey, events.FieldOrders, 1)
		pipe.HIncrBy(ctx, salesKey, events.FieldItems, sold)
		s.expire(ctx, pipe, salesKey, itemsKey, events.ItemNamesKey)
		return nil
	})
	return err
}

func (s *Store) RecordRefund(ctx context.Context, day string, amount float64) error {
	salesKey := events.DailySalesKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrByFloat(ctx, salesKey, events.FieldRefunded, amount)
		pipe.HIncrBy(ctx, salesKey, events.FieldRefunds, 1)
		s.expire(ctx, pipe, salesKey)
		return nil
	})
	return err
}

func (s *Store) RecordStatus(ctx context.Context, day, status string) error {
	statusKey := events.DailyStatusKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, statusKey, status, 1)
		s.expire(ctx, pipe, statusKey)
		return nil
	})
	return err
}
