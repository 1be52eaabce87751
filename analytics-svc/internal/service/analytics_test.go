package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"canteen/analytics-svc/internal/domain"
	"canteen/analytics-svc/internal/mocks"
	"canteen/analytics-svc/internal/service"
	"canteen/apperr"
	"canteen/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func point(ts string, amount float64) domain.OrderPoint {
	return domain.OrderPoint{CreatedAt: at(ts), TotalAmount: decimal.NewFromFloat(amount)}
}

func TestParseRange(t *testing.T) {
	now := at("2024-05-10T15:00:00Z")

	tests := []struct {
		name      string
		from, to  string
		want      domain.Range
		wantField string
	}{
		{name: "defaults to the last seven days", want: domain.Range{From: day("2024-05-04"), To: day("2024-05-11")}},
		{name: "single day", from: "2024-05-01", to: "2024-05-01", want: domain.Range{From: day("2024-05-01"), To: day("2024-05-02")}},
		{name: "open start", to: "2024-05-01", want: domain.Range{From: day("2024-04-25"), To: day("2024-05-02")}},
		{name: "bad from", from: "05/01/2024", wantField: "from"},
		{name: "bad to", to: "yesterday", wantField: "to"},
		{name: "start after end", from: "2024-05-09", to: "2024-05-01", wantField: "from"},
		{name: "range too long", from: "2020-01-01", to: "2024-05-01"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			rng, err := service.ParseRange(testCase.from, testCase.to, now)
			if testCase.want.From.IsZero() {
				require.Error(t, err)
				assert.Equal(t, apperr.Invalid, apperr.KindOf(err))
				if testCase.wantField != "" {
					ae, _ := apperr.As(err)
					assert.Contains(t, ae.Fields, testCase.wantField)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, rng)
		})
	}
}

func TestBucketStartWeeksBeginMonday(t *testing.T) {
	assert.Equal(t, day("2024-04-29"), service.BucketStart(at("2024-05-05T23:59:00Z"), domain.BucketWeek))
	assert.Equal(t, day("2024-05-06"), service.BucketStart(at("2024-05-06T00:00:00Z"), domain.BucketWeek))
	assert.Equal(t, day("2024-02-01"), service.BucketStart(at("2024-02-29T08:00:00Z"), domain.BucketMonth))
}

func TestBuildTrend(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.OrderPoint
		rng    domain.Range
		bucket string
		want   []domain.TrendBucket
	}{
		{
			name: "days are zero filled",
			points: []domain.OrderPoint{
				point("2024-05-01T10:00:00Z", 5.5),
				point("2024-05-01T12:00:00Z", 4.5),
				point("2024-05-03T09:00:00Z", 2),
			},
			rng:    domain.Range{From: day("2024-05-01"), To: day("2024-05-04")},
			bucket: domain.BucketDay,
			want: []domain.TrendBucket{
				{Start: day("2024-05-01"), Label: "2024-05-01", Revenue: 10, Orders: 2},
				{Start: day("2024-05-02"), Label: "2024-05-02"},
				{Start: day("2024-05-03"), Label: "2024-05-03", Revenue: 2, Orders: 1},
			},
		},
		{
			name: "weeks",
			points: []domain.OrderPoint{
				point("2024-04-30T10:00:00Z", 3),
				point("2024-05-06T00:00:00Z", 4),
				point("2024-05-12T23:00:00Z", 1),
				point("2024-05-13T08:00:00Z", 2),
			},
			rng:    domain.Range{From: day("2024-04-30"), To: day("2024-05-14")},
			bucket: domain.BucketWeek,
			want: []domain.TrendBucket{
				{Start: day("2024-04-29"), Label: "2024-W18", Revenue: 3, Orders: 1},
				{Start: day("2024-05-06"), Label: "2024-W19", Revenue: 5, Orders: 2},
				{Start: day("2024-05-13"), Label: "2024-W20", Revenue: 2, Orders: 1},
			},
		},
		{
			name: "months ignore orders outside the range",
			points: []domain.OrderPoint{
				point("2024-01-10T10:00:00Z", 9),
				point("2024-02-29T10:00:00Z", 7.25),
			},
			rng:    domain.Range{From: day("2024-01-15"), To: day("2024-04-01")},
			bucket: domain.BucketMonth,
			want: []domain.TrendBucket{
				{Start: day("2024-01-01"), Label: "2024-01"},
				{Start: day("2024-02-01"), Label: "2024-02", Revenue: 7.25, Orders: 1},
				{Start: day("2024-03-01"), Label: "2024-03"},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.BuildTrend(testCase.points, testCase.rng, testCase.bucket))
		})
	}
}

func TestAnalyticsService_Summary(t *testing.T) {
	repo := mocks.NewSalesRepository(t)
	svc := service.NewAnalyticsService(repo, mocks.NewAggregateCache(t), logger.Discard())
	rng := domain.Range{From: day("2024-05-01"), To: day("2024-05-08")}

	repo.On("SalesTotals", mock.Anything, rng).Return(&domain.SalesTotals{
		Orders:    3,
		Revenue:   decimal.RequireFromString("20.00"),
		ItemsSold: 7,
		Refunds:   1,
		Refunded:  decimal.RequireFromString("4.50"),
	}, nil).Once()

	summary, err := svc.Summary(context.Background(), rng)
	require.NoError(t, err)
	assert.Equal(t, &domain.Summary{
		From:              "2024-05-01",
		To:                "2024-05-07",
		Revenue:           20,
		Orders:            3,
		ItemsSold:         7,
		Refunds:           1,
		Refunded:          4.5,
		NetRevenue:        15.5,
		AverageOrderValue: 6.67,
	}, summary)

	repo.On("SalesTotals", mock.Anything, rng).Return(nil, errors.New("db down")).Once()
	_, err = svc.Summary(context.Background(), rng)
	assert.Equal(t, apperr.Internal, apperr.KindOf(err))
}

func TestAnalyticsService_Trend(t *testing.T) {
	rng := domain.Range{From: day("2024-05-01"), To: day("2024-05-02")}

	t.Run("rejects unknown bucket", func(t *testing.T) {
		svc := service.NewAnalyticsService(mocks.NewSalesRepository(t), mocks.NewAggregateCache(t), logger.Discard())
		_, err := svc.Trend(context.Background(), rng, "hour")
		assert.Equal(t, apperr.Invalid, apperr.KindOf(err))
	})

	t.Run("defaults to days", func(t *testing.T) {
		repo := mocks.NewSalesRepository(t)
		repo.On("OrdersBetween", mock.Anything, rng).Return([]domain.OrderPoint{point("2024-05-01T09:00:00Z", 3)}, nil).Once()
		svc := service.NewAnalyticsService(repo, mocks.NewAggregateCache(t), logger.Discard())

		trend, err := svc.Trend(context.Background(), rng, "")
		require.NoError(t, err)
		require.Len(t, trend, 1)
		assert.Equal(t, 1, trend[0].Orders)
	})

	t.Run("degrades to empty", func(t *testing.T) {
		repo := mocks.NewSalesRepository(t)
		repo.On("OrdersBetween", mock.Anything, rng).Return(nil, errors.New("db down")).Once()
		svc := service.NewAnalyticsService(repo, mocks.NewAggregateCache(t), logger.Discard())

		trend, err := svc.Trend(context.Background(), rng, domain.BucketWeek)
		require.NoError(t, err)
		assert.Empty(t, trend)
	})
}

func TestAnalyticsService_TopItems(t *testing.T) {
	singleDay := domain.Range{From: day("2024-05-01"), To: day("2024-05-02")}
	week := domain.Range{From: day("2024-05-01"), To: day("2024-05-08")}
	leaderboard := []domain.TopItem{{MenuItemID: "m1", Name: "Rice", Quantity: 9}}
	fromDB := []domain.TopItem{{MenuItemID: "m2", Name: "Tea", Quantity: 4}}

	tests := []struct {
		name         string
		rng          domain.Range
		limit        int
		prepareMocks func(repo *mocks.SalesRepository, cache *mocks.AggregateCache)
		want         []domain.TopItem
	}{
		{
			name:  "single day from leaderboard",
			rng:   singleDay,
			limit: 5,
			prepareMocks: func(repo *mocks.SalesRepository, cache *mocks.AggregateCache) {
				cache.On("TopItems", mock.Anything, "2024-05-01", 5).Return(leaderboard, nil).Once()
			},
			want: leaderboard,
		},
		{
			name: "empty leaderboard falls back",
			rng:  singleDay,
			prepareMocks: func(repo *mocks.SalesRepository, cache *mocks.AggregateCache) {
				cache.On("TopItems", mock.Anything, "2024-05-01", service.DefaultTopLimit).Return(nil, nil).Once()
				repo.On("TopItems", mock.Anything, singleDay, service.DefaultTopLimit).Return(fromDB, nil).Once()
			},
			want: fromDB,
		},
		{
			name:  "cache error falls back",
			rng:   singleDay,
			limit: 500,
			prepareMocks: func(repo *mocks.SalesRepository, cache *mocks.AggregateCache) {
				cache.On("TopItems", mock.Anything, "2024-05-01", service.MaxTopLimit).Return(nil, errors.New("redis down")).Once()
				repo.On("TopItems", mock.Anything, singleDay, service.MaxTopLimit).Return(fromDB, nil).Once()
			},
			want: fromDB,
		},
		{
			name:  "ranges query postgres",
			rng:   week,
			limit: 3,
			prepareMocks: func(repo *mocks.SalesRepository, cache *mocks.AggregateCache) {
				repo.On("TopItems", mock.Anything, week, 3).Return(fromDB, nil).Once()
			},
			want: fromDB,
		},
		{
			name:  "failure degrades to empty",
			rng:   week,
			limit: 3,
			prepareMocks: func(repo *mocks.SalesRepository, cache *mocks.AggregateCache) {
				repo.On("TopItems", mock.Anything, week, 3).Return(nil, errors.New("db down")).Once()
			},
			want: []domain.TopItem{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewSalesRepository(t)
			cache := mocks.NewAggregateCache(t)
			testCase.prepareMocks(repo, cache)
			svc := service.NewAnalyticsService(repo, cache, logger.Discard())

			items, err := svc.TopItems(context.Background(), testCase.rng, testCase.limit)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, items)
		})
	}
}

func TestAnalyticsService_Breakdowns(t *testing.T) {
	repo := mocks.NewSalesRepository(t)
	svc := service.NewAnalyticsService(repo, mocks.NewAggregateCache(t), logger.Discard())

	repo.On("StatusCounts", mock.Anything).Return(map[string]int{"PENDING": 2, "COMPLETED": 5}, nil).Once()
	assert.Equal(t, map[string]int{"PENDING": 2, "READY TO PICKUP": 0, "COMPLETED": 5, "REFUNDED": 0},
		svc.StatusBreakdown(context.Background()))

	repo.On("RefundCounts", mock.Anything).Return(nil, errors.New("db down")).Once()
	assert.Equal(t, map[string]int{"pending": 0, "approved": 0, "rejected": 0},
		svc.RefundStats(context.Background()))
}

func TestAnalyticsService_Daily(t *testing.T) {
	cache := mocks.NewAggregateCache(t)
	svc := service.NewAnalyticsService(mocks.NewSalesRepository(t), cache, logger.Discard())
	counters := &domain.DailyCounters{Day: "2024-05-01", Orders: 4}

	cache.On("Daily", mock.Anything, "2024-05-01").Return(counters, nil).Once()
	got, err := svc.Daily(context.Background(), at("2024-05-01T18:00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, counters, got)
}
