package service_test

import (
	"context"
	"testing"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/canteen-svc/internal/mocks"
	"canteen/canteen-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptService_Details(t *testing.T) {
	ctx := context.Background()
	refund := &domain.RefundRequest{RefundID: "r1", Status: domain.RefundPending}

	tests := []struct {
		name       string
		receipt    *domain.Receipt
		receiptErr error
		refund     *domain.RefundRequest
		refundErr  error
		callRefund bool
		wantRefund *domain.RefundRequest
		wantKind   apperr.Kind
	}{
		{
			name:    "no refund",
			receipt: &domain.Receipt{ReceiptID: "rc1", OrderID: "o1"},
		},
		{
			name:       "with refund",
			receipt:    &domain.Receipt{ReceiptID: "rc1", OrderID: "o1", RefundID: "r1"},
			refund:     refund,
			callRefund: true,
			wantRefund: refund,
		},
		{
			name:       "dangling refund link",
			receipt:    &domain.Receipt{ReceiptID: "rc1", OrderID: "o1", RefundID: "r1"},
			refundErr:  domain.ErrNotFound,
			callRefund: true,
		},
		{
			name:       "refund lookup fails",
			receipt:    &domain.Receipt{ReceiptID: "rc1", OrderID: "o1", RefundID: "r1"},
			refundErr:  assert.AnError,
			callRefund: true,
			wantKind:   apperr.Internal,
		},
		{
			name:       "missing receipt",
			receiptErr: domain.ErrNotFound,
			wantKind:   apperr.NotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			receipts := mocks.NewReceiptRepository(t)
			refunds := mocks.NewRefundRepository(t)
			svc := service.NewReceiptService(receipts, refunds)

			receipts.On("GetReceipt", ctx, "rc1").Return(testCase.receipt, testCase.receiptErr).Once()
			if testCase.callRefund {
				refunds.On("GetRefund", ctx, "r1").Return(testCase.refund, testCase.refundErr).Once()
			}

			details, err := svc.Details(ctx, "rc1")

			if testCase.wantKind != "" {
				assert.Nil(t, details)
				assert.Equal(t, testCase.wantKind, apperr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *testCase.receipt, details.Receipt)
			assert.Equal(t, testCase.wantRefund, details.Refund)
		})
	}
}
