package service

import (
	"context"
	"time"

	"canteen/analytics-svc/internal/domain"
	"canteen/analytics-svc/internal/storage"
)

type SalesRepository interface {
	SalesTotals(ctx context.Context, rng domain.Range) (*domain.SalesTotals, error)
	OrdersBetween(ctx context.Context, rng domain.Range) ([]domain.OrderPoint, error)
	TopItems(ctx context.Context, rng domain.Range, limit int) ([]domain.TopItem, error)
	StatusCounts(ctx context.Context) (map[string]int, error)
	RefundCounts(ctx context.Context) (map[string]int, error)
}

type AggregateCache interface {
	TopItems(ctx context.Context, day string, limit int) ([]domain.TopItem, error)
	Daily(ctx context.Context, day string) (*domain.DailyCounters, error)
}

type AnalyticsInterface interface {
	Summary(ctx context.Context, rng domain.Range) (*domain.Summary, error)
	Trend(ctx context.Context, rng domain.Range, bucket string) ([]domain.TrendBucket, error)
	TopItems(ctx context.Context, rng domain.Range, limit int) ([]domain.TopItem, error)
	StatusBreakdown(ctx context.Context) map[string]int
	RefundStats(ctx context.Context) map[string]int
	Daily(ctx context.Context, day time.Time) (*domain.DailyCounters, error)
}

var (
	_ SalesRepository    = (*storage.PostgresRepository)(nil)
	_ AggregateCache     = (*storage.RedisAggregates)(nil)
	_ AnalyticsInterface = (*AnalyticsService)(nil)
)
