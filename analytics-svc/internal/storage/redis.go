package storage

import (
	"context"
	"strconv"

	"canteen/analytics-svc/internal/domain"
	"canteen/events"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// RedisAggregates reads the daily counters maintained by agg-svc.
type RedisAggregates struct {
	Client *redis.Client
}

func NewRedisAggregates(client *redis.Client) *RedisAggregates {
	return &RedisAggregates{Client: client}
}

// TopItems returns the day's leaderboard; an empty slice means no data.
func (a *RedisAggregates) TopItems(ctx context.Context, day string, limit int) ([]domain.TopItem, error) {
	result, err := a.Client.ZRevRangeWithScores(ctx, events.DailyItemsKey(day), 0, int64(limit-1)).Result()
	if err != nil || len(result) == 0 {
		return nil, err
	}

	ids := make([]string, 0, len(result))
	for _, member := range result {
		ids = append(ids, member.Member.(string))
	}
	names, err := a.Client.HMGet(ctx, events.ItemNamesKey, ids...).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.TopItem, 0, len(result))
	for i, member := range result {
		item := domain.TopItem{MenuItemID: ids[i], Quantity: int(member.Score)}
		if name, ok := names[i].(string); ok {
			item.Name = name
		}
		items = append(items, item)
	}
	return items, nil
}

func (a *RedisAggregates) Daily(ctx context.Context, day string) (*domain.DailyCounters, error) {
	var sales, statuses *redis.MapStringStringCmd
	_, err := a.Client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		sales = pipe.HGetAll(ctx, events.DailySalesKey(day))
		statuses = pipe.HGetAll(ctx, events.DailyStatusKey(day))
		return nil
	})
	if err != nil {
		return nil, err
	}

	counters := &domain.DailyCounters{Day: day, Statuses: map[string]int{}}
	fields := sales.Val()
	counters.Revenue = money(fields[events.FieldRevenue])
	counters.Refunded = money(fields[events.FieldRefunded])
	counters.Orders, _ = strconv.Atoi(fields[events.FieldOrders])
	counters.Items, _ = strconv.Atoi(fields[events.FieldItems])
	counters.Refunds, _ = strconv.Atoi(fields[events.FieldRefunds])

	for status, raw := range statuses.Val() {
		if n, err := strconv.Atoi(raw); err == nil {
			counters.Statuses[status] = n
		}
	}
	return counters, nil
}

// money parses a float counter and rounds away HINCRBYFLOAT drift.
func money(raw string) float64 {
	if raw == "" {
		return 0
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0
	}
	return d.Round(2).InexactFloat64()
}
