package service

import (
	"context"
	"fmt"
	"time"

	"canteen/analytics-svc/internal/domain"
	"canteen/apperr"
	"canteen/events"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTopLimit = 10
	MaxTopLimit     = 50
	MaxRangeDays    = 1100
	dayLayout       = "2006-01-02"
)

type AnalyticsService struct {
	repo  SalesRepository
	cache AggregateCache
	log   *logrus.Entry
}

func NewAnalyticsService(repo SalesRepository, cache AggregateCache, log *logrus.Entry) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache, log: log}
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseRange turns inclusive YYYY-MM-DD bounds into a Range. Missing bounds
// default to the seven days ending today.
func ParseRange(from, to string, now time.Time) (domain.Range, error) {
	end := startOfDay(now)
	if to != "" {
		t, err := time.Parse(dayLayout, to)
		if err != nil {
			return domain.Range{}, apperr.InvalidErr("Dates must use YYYY-MM-DD.", map[string]string{"to": "Use YYYY-MM-DD."})
		}
		end = t
	}

	start := end.AddDate(0, 0, -6)
	if from != "" {
		t, err := time.Parse(dayLayout, from)
		if err != nil {
			return domain.Range{}, apperr.InvalidErr("Dates must use YYYY-MM-DD.", map[string]string{"from": "Use YYYY-MM-DD."})
		}
		start = t
	}

	if start.After(end) {
		return domain.Range{}, apperr.InvalidErr("The start date must not be after the end date.", map[string]string{"from": "Must not be after the end date."})
	}
	rng := domain.Range{From: start, To: end.AddDate(0, 0, 1)}
	if rng.To.Sub(rng.From) > MaxRangeDays*24*time.Hour {
		return domain.Range{}, apperr.InvalidErr(fmt.Sprintf("The date range may span at most %d days.", MaxRangeDays), nil)
	}
	return rng, nil
}

func (s *AnalyticsService) Summary(ctx context.Context, rng domain.Range) (*domain.Summary, error) {
	totals, err := s.repo.SalesTotals(ctx, rng)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	summary := &domain.Summary{
		From:       rng.From.Format(dayLayout),
		To:         rng.To.AddDate(0, 0, -1).Format(dayLayout),
		Revenue:    totals.Revenue.Round(2).InexactFloat64(),
		Orders:     totals.Orders,
		ItemsSold:  totals.ItemsSold,
		Refunds:    totals.Refunds,
		Refunded:   totals.Refunded.Round(2).InexactFloat64(),
		NetRevenue: totals.Revenue.Sub(totals.Refunded).Round(2).InexactFloat64(),
	}
	if totals.Orders > 0 {
		summary.AverageOrderValue = totals.Revenue.Div(decimal.NewFromInt(int64(totals.Orders))).Round(2).InexactFloat64()
	}
	return summary, nil
}

// Trend groups orders into day, week or month buckets. Failures degrade to an
// empty trend.
func (s *AnalyticsService) Trend(ctx context.Context, rng domain.Range, bucket string) ([]domain.TrendBucket, error) {
	if bucket == "" {
		bucket = domain.BucketDay
	}
	switch bucket {
	case domain.BucketDay, domain.BucketWeek, domain.BucketMonth:
	default:
		return nil, apperr.InvalidErr("Bucket must be one of day, week, month.", map[string]string{"bucket": "Must be one of: day week month."})
	}

	points, err := s.repo.OrdersBetween(ctx, rng)
	if err != nil {
		s.log.WithError(err).Warn("Failed to load orders for trend")
		return []domain.TrendBucket{}, nil
	}
	return BuildTrend(points, rng, bucket), nil
}

// BucketStart returns the start of the bucket containing t. Weeks start on Monday.
func BucketStart(t time.Time, bucket string) time.Time {
	day := startOfDay(t)
	switch bucket {
	case domain.BucketWeek:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case domain.BucketMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return day
}

func nextBucket(start time.Time, bucket string) time.Time {
	switch bucket {
	case domain.BucketWeek:
		return start.AddDate(0, 0, 7)
	case domain.BucketMonth:
		return start.AddDate(0, 1, 0)
	}
	return start.AddDate(0, 0, 1)
}

func bucketLabel(start time.Time, bucket string) string {
	switch bucket {
	case domain.BucketWeek:
		year, week := start.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case domain.BucketMonth:
		return start.Format("2006-01")
	}
	return start.Format(dayLayout)
}

// BuildTrend emits every bucket overlapping rng in order, zero-filled where
// there were no orders.
func BuildTrend(points []domain.OrderPoint, rng domain.Range, bucket string) []domain.TrendBucket {
	buckets := []domain.TrendBucket{}
	revenue := []decimal.Decimal{}
	index := map[time.Time]int{}

	for start := BucketStart(rng.From, bucket); start.Before(rng.To); start = nextBucket(start, bucket) {
		index[start] = len(buckets)
		buckets = append(buckets, domain.TrendBucket{Start: start, Label: bucketLabel(start, bucket)})
		revenue = append(revenue, decimal.Zero)
	}

	for _, p := range points {
		if p.CreatedAt.Before(rng.From) || !p.CreatedAt.Before(rng.To) {
			continue
		}
		i, ok := index[BucketStart(p.CreatedAt, bucket)]
		if !ok {
			continue
		}
		buckets[i].Orders++
		revenue[i] = revenue[i].Add(p.TotalAmount)
	}

	for i := range buckets {
		buckets[i].Revenue = revenue[i].Round(2).InexactFloat64()
	}
	return buckets
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultTopLimit
	}
	if limit > MaxTopLimit {
		return MaxTopLimit
	}
	return limit
}

// TopItems reads the Redis leaderboard for single days and falls back to
// Postgres otherwise. Failures degrade to an empty list.
func (s *AnalyticsService) TopItems(ctx context.Context, rng domain.Range, limit int) ([]domain.TopItem, error) {
	limit = clampLimit(limit)

	if rng.SingleDay() {
		items, err := s.cache.TopItems(ctx, events.DayKey(rng.From), limit)
		if err != nil {
			s.log.WithError(err).Warn("Failed to read item leaderboard")
		}
		if len(items) > 0 {
			return items, nil
		}
	}

	items, err := s.repo.TopItems(ctx, rng, limit)
	if err != nil {
		s.log.WithError(err).Warn("Failed to query top items")
		return []domain.TopItem{}, nil
	}
	return items, nil
}

func filled(keys []string, counts map[string]int) map[string]int {
	out := make(map[string]int, len(keys)+len(counts))
	for _, k := range keys {
		out[k] = 0
	}
	for k, v := range counts {
		out[k] = v
	}
	return out
}

// StatusBreakdown counts orders per status; every known status is present.
func (s *AnalyticsService) StatusBreakdown(ctx context.Context) map[string]int {
	counts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Failed to count order statuses")
	}
	return filled(domain.OrderStatuses, counts)
}

func (s *AnalyticsService) RefundStats(ctx context.Context) map[string]int {
	counts, err := s.repo.RefundCounts(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Failed to count refund statuses")
	}
	return filled(domain.RefundStatuses, counts)
}

// Daily returns the live counters for one day.
func (s *AnalyticsService) Daily(ctx context.Context, day time.Time) (*domain.DailyCounters, error) {
	counters, err := s.cache.Daily(ctx, events.DayKey(day))
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return counters, nil
}
