package mocks

import (
	"context"

	"canteen/events"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a testify mock for StoreInterface.
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) MarkProcessed(ctx context.Context, eventKey string) (bool, error) {
	ret := _m.Called(ctx, eventKey)

	var r0 bool
	if v := ret.Get(0); v != nil {
		r0 = v.(bool)
	}

	return r0, ret.Error(1)
}

func (_m *StoreInterface) UnmarkProcessed(ctx context.Context, eventKey string) error {
	ret := _m.Called(ctx, eventKey)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordOrder(ctx context.Context, day string, total float64, lines []events.OrderLine) error {
	ret := _m.Called(ctx, day, total, lines)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordRefund(ctx context.Context, day string, amount float64) error {
	ret := _m.Called(ctx, day, amount)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordStatus(ctx context.Context, day string, status string) error {
	ret := _m.Called(ctx, day, status)
	return ret.Error(0)
}

// NewStoreInterface registers AssertExpectations on test cleanup.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
