package storage_test

import (
	"context"
	"testing"

	"canteen/analytics-svc/internal/domain"
	"canteen/analytics-svc/internal/storage"
	"canteen/events"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAggregates(t *testing.T) (*miniredis.Miniredis, *storage.RedisAggregates) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, storage.NewRedisAggregates(client)
}

func TestRedisAggregates_TopItems(t *testing.T) {
	mr, aggregates := setupAggregates(t)
	key := events.DailyItemsKey("2024-05-01")
	mr.ZAdd(key, 3, "m1")
	mr.ZAdd(key, 8, "m2")
	mr.ZAdd(key, 5, "m3")
	mr.HSet(events.ItemNamesKey, "m2", "Tea")
	mr.HSet(events.ItemNamesKey, "m3", "Rice")

	items, err := aggregates.TopItems(context.Background(), "2024-05-01", 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.TopItem{
		{MenuItemID: "m2", Name: "Tea", Quantity: 8},
		{MenuItemID: "m3", Name: "Rice", Quantity: 5},
	}, items)

	items, err = aggregates.TopItems(context.Background(), "2024-05-02", 2)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRedisAggregates_Daily(t *testing.T) {
	mr, aggregates := setupAggregates(t)
	mr.HSet(events.DailySalesKey("2024-05-01"),
		events.FieldRevenue, "30.300000000000001",
		events.FieldOrders, "4",
		events.FieldItems, "9",
		events.FieldRefunded, "5.5",
		events.FieldRefunds, "1",
	)
	mr.HSet(events.DailyStatusKey("2024-05-01"), "COMPLETED", "3", "READY TO PICKUP", "1")

	counters, err := aggregates.Daily(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyCounters{
		Day:      "2024-05-01",
		Revenue:  30.3,
		Orders:   4,
		Items:    9,
		Refunded: 5.5,
		Refunds:  1,
		Statuses: map[string]int{"COMPLETED": 3, "READY TO PICKUP": 1},
	}, counters)
}

func TestRedisAggregates_DailyEmpty(t *testing.T) {
	_, aggregates := setupAggregates(t)

	counters, err := aggregates.Daily(context.Background(), "2024-05-09")
	require.NoError(t, err)
	assert.Equal(t, &domain.DailyCounters{Day: "2024-05-09", Statuses: map[string]int{}}, counters)
}
