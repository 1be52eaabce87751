package mocks

import (
	"context"
	"time"

	"canteen/analytics-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// SalesRepository is a testify mock for SalesRepository.
type SalesRepository struct {
	mock.Mock
}

func (_m *SalesRepository) SalesTotals(ctx context.Context, rng domain.Range) (*domain.SalesTotals, error) {
	ret := _m.Called(ctx, rng)

	var r0 *domain.SalesTotals
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.SalesTotals)
	}

	return r0, ret.Error(1)
}

func (_m *SalesRepository) OrdersBetween(ctx context.Context, rng domain.Range) ([]domain.OrderPoint, error) {
	ret := _m.Called(ctx, rng)

	var r0 []domain.OrderPoint
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.OrderPoint)
	}

	return r0, ret.Error(1)
}

func (_m *SalesRepository) TopItems(ctx context.Context, rng domain.Range, limit int) ([]domain.TopItem, error) {
	ret := _m.Called(ctx, rng, limit)

	var r0 []domain.TopItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.TopItem)
	}

	return r0, ret.Error(1)
}

func (_m *SalesRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	ret := _m.Called(ctx)

	var r0 map[string]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int)
	}

	return r0, ret.Error(1)
}

func (_m *SalesRepository) RefundCounts(ctx context.Context) (map[string]int, error) {
	ret := _m.Called(ctx)

	var r0 map[string]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int)
	}

	return r0, ret.Error(1)
}

// NewSalesRepository registers AssertExpectations on test cleanup.
func NewSalesRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SalesRepository {
	m := &SalesRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// AggregateCache is a testify mock for AggregateCache.
type AggregateCache struct {
	mock.Mock
}

func (_m *AggregateCache) TopItems(ctx context.Context, day string, limit int) ([]domain.TopItem, error) {
	ret := _m.Called(ctx, day, limit)

	var r0 []domain.TopItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.TopItem)
	}

	return r0, ret.Error(1)
}

func (_m *AggregateCache) Daily(ctx context.Context, day string) (*domain.DailyCounters, error) {
	ret := _m.Called(ctx, day)

	var r0 *domain.DailyCounters
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.DailyCounters)
	}

	return r0, ret.Error(1)
}

// NewAggregateCache registers AssertExpectations on test cleanup.
func NewAggregateCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *AggregateCache {
	m := &AggregateCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// AnalyticsInterface is a testify mock for AnalyticsInterface.
type AnalyticsInterface struct {
	mock.Mock
}

func (_m *AnalyticsInterface) Summary(ctx context.Context, rng domain.Range) (*domain.Summary, error) {
	ret := _m.Called(ctx, rng)

	var r0 *domain.Summary
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Summary)
	}

	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) Trend(ctx context.Context, rng domain.Range, bucket string) ([]domain.TrendBucket, error) {
	ret := _m.Called(ctx, rng, bucket)

	var r0 []domain.TrendBucket
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.TrendBucket)
	}

	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) TopItems(ctx context.Context, rng domain.Range, limit int) ([]domain.TopItem, error) {
	ret := _m.Called(ctx, rng, limit)

	var r0 []domain.TopItem
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.TopItem)
	}

	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) StatusBreakdown(ctx context.Context) map[string]int {
	ret := _m.Called(ctx)

	var r0 map[string]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int)
	}

	return r0
}

func (_m *AnalyticsInterface) RefundStats(ctx context.Context) map[string]int {
	ret := _m.Called(ctx)

	var r0 map[string]int
	if v := ret.Get(0); v != nil {
		r0 = v.(map[string]int)
	}

	return r0
}

func (_m *AnalyticsInterface) Daily(ctx context.Context, day time.Time) (*domain.DailyCounters, error) {
	ret := _m.Called(ctx, day)

	var r0 *domain.DailyCounters
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.DailyCounters)
	}

	return r0, ret.Error(1)
}

// NewAnalyticsInterface registers AssertExpectations on test cleanup.
func NewAnalyticsInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
