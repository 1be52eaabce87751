package service_test

import (
	"context"
	"testing"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/mocks"
	"canteen/canteen-svc/internal/service"
	"canteen/events"
	"canteen/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type refundMocks struct {
	refunds  *mocks.RefundRepository
	orders   *mocks.OrderRepository
	events   *mocks.EventPublisher
	notifier *mocks.ChangeNotifier
}

func newRefundService(t *testing.T) (*service.RefundService, refundMocks) {
	m := refundMocks{
		refunds:  mocks.NewRefundRepository(t),
		orders:   mocks.NewOrderRepository(t),
		events:   mocks.NewEventPublisher(t),
		notifier: mocks.NewChangeNotifier(t),
	}
	return service.NewRefundService(m.refunds, m.orders, m.events, m.notifier, logger.Discard()), m
}

func TestRefundService_Request(t *testing.T) {
	ctx := context.Background()
	owned := &domain.Order{OrderID: "o1", UserID: "u1", Status: domain.StatusCompleted, TotalAmount: 12}

	tests := []struct {
		name     string
		userID   string
		input    service.RefundInput
		setup    func(m refundMocks)
		wantKind apperr.Kind
		wantErr  error
	}{
		{
			name:     "reason required",
			userID:   "u1",
			input:    service.RefundInput{OrderID: "o1", Reason: "  "},
			setup:    func(refundMocks) {},
			wantKind: apperr.Invalid,
		},
		{
			name:   "unknown order",
			userID: "u1",
			input:  service.RefundInput{OrderID: "nope", Reason: "cold"},
			setup: func(m refundMocks) {
				m.orders.On("GetOrder", ctx, "nope").Return(nil, domain.ErrNotFound).Once()
			},
			wantKind: apperr.NotFound,
		},
		{
			name:   "someone else's order",
			userID: "u2",
			input:  service.RefundInput{OrderID: "o1", Reason: "cold"},
			setup: func(m refundMocks) {
				m.orders.On("GetOrder", ctx, "o1").Return(owned, nil).Once()
			},
			wantKind: apperr.Forbidden,
			wantErr:  service.ErrNotOrderOwner,
		},
		{
			name:   "refund already active",
			userID: "u1",
			input:  service.RefundInput{OrderID: "o1", Reason: "cold"},
			setup: func(m refundMocks) {
				m.orders.On("GetOrder", ctx, "o1").Return(owned, nil).Once()
				m.refunds.On("ActiveRefundForOrder", ctx, "o1").
					Return(&domain.RefundRequest{RefundID: "r0", Status: domain.RefundPending}, nil).Once()
			},
			wantKind: apperr.Conflict,
			wantErr:  service.ErrRefundExists,
		},
		{
			name:   "creates pending refund",
			userID: "u1",
			input:  service.RefundInput{OrderID: "o1", Reason: " cold ", Detail: "soup was cold"},
			setup: func(m refundMocks) {
				m.orders.On("GetOrder", ctx, "o1").Return(owned, nil).Once()
				m.refunds.On("ActiveRefundForOrder", ctx, "o1").Return(nil, domain.ErrNotFound).Once()
				m.refunds.On("CreateRefund", ctx, mock.MatchedBy(func(r *domain.RefundRequest) bool {
					return r.Status == domain.RefundPending && r.Reason == "cold" && r.OrderID == "o1" && !r.RequestTime.IsZero()
				})).Return(nil).Once()
				m.notifier.On("Publish", ctx, domain.ChannelRefunds, mock.AnythingOfType("string")).Return(nil).Once()
				m.notifier.On("Publish", ctx, domain.ChannelOrders, "o1").Return(nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newRefundService(t)
			testCase.setup(m)

			refund, err := svc.Request(ctx, testCase.userID, testCase.input)

			if testCase.wantKind != "" {
				assert.Nil(t, refund)
				assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
				if testCase.wantErr != nil {
					assert.ErrorIs(t, err, testCase.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, refund.RefundID)
		})
	}
}

func TestRefundService_Review(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name            string
		approve         bool
		wantStatus      string
		wantOrderStatus string
	}{
		{name: "approve refunds the order", approve: true, wantStatus: domain.RefundApproved, wantOrderStatus: domain.StatusRefunded},
		{name: "reject leaves the order", approve: false, wantStatus: domain.RefundRejected, wantOrderStatus: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, m := newRefundService(t)

			m.refunds.On("GetRefund", ctx, "r1").
				Return(&domain.RefundRequest{RefundID: "r1", OrderID: "o1", Status: domain.RefundPending}, nil).Once()
			m.refunds.On("ReviewRefund", ctx, mock.MatchedBy(func(r *domain.RefundRequest) bool {
				return r.Status == testCase.wantStatus && r.RefundBy == "staff-1" && r.Remark == "ok"
			}), testCase.wantOrderStatus).Return(nil).Once()
			m.orders.On("GetOrder", ctx, "o1").
				Return(&domain.Order{OrderID: "o1", UserID: "u1", TotalAmount: 12.5, Status: domain.StatusRefunded}, nil).Once()
			m.events.On("PublishOrderEvent", ctx, mock.MatchedBy(func(msg events.OrderMessage) bool {
				return msg.Type == events.RefundReviewed && msg.RefundStatus == testCase.wantStatus && msg.TotalAmount == 12.5
			})).Return(nil).Once()
			m.notifier.On("Publish", ctx, domain.ChannelRefunds, "r1").Return(nil).Once()
			m.notifier.On("Publish", ctx, domain.ChannelOrders, "o1").Return(nil).Once()

			refund, err := svc.Review(ctx, "r1", "staff-1", service.Decision{Approve: testCase.approve, Remark: " ok "})

			require.NoError(t, err)
			assert.Equal(t, testCase.wantStatus, refund.Status)
		})
	}
}

func TestRefundService_ReviewTwice(t *testing.T) {
	ctx := context.Background()
	svc, m := newRefundService(t)

	m.refunds.On("GetRefund", ctx, "r1").
		Return(&domain.RefundRequest{RefundID: "r1", Status: domain.RefundApproved}, nil).Once()

	_, err := svc.Review(ctx, "r1", "staff-1", service.Decision{Approve: false})

	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.ErrorIs(t, err, service.ErrRefundReviewed)
}

func TestRefundService_ReviewLosesRace(t *testing.T) {
	ctx := context.Background()
	svc, m := newRefundService(t)

	m.refunds.On("GetRefund", ctx, "r1").
		Return(&domain.RefundRequest{RefundID: "r1", OrderID: "o1", Status: domain.RefundPending}, nil).Once()
	m.refunds.On("ReviewRefund", ctx, mock.Anything, domain.StatusRefunded).Return(domain.ErrRefundNotPending).Once()

	_, err := svc.Review(ctx, "r1", "staff-1", service.Decision{Approve: true})

	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.ErrorIs(t, err, service.ErrRefundReviewed)
}

func TestRefundService_ListRejectsUnknownStatus(t *testing.T) {
	svc, _ := newRefundService(t)

	_, err := svc.List(context.Background(), "lost")

	assert.Equal(t, apperr.Invalid, apperr.KindOf(err))
}
