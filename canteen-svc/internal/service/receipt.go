package service

import (
	"context"
	"errors"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
)

type ReceiptService struct {
	receipts ReceiptRepository
	refunds  RefundRepository
}

func NewReceiptService(receipts ReceiptRepository, refunds RefundRepository) *ReceiptService {
	return &ReceiptService{receipts: receipts, refunds: refunds}
}

func (s *ReceiptService) Get(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	receipt, err := s.receipts.GetReceipt(ctx, receiptID)
	if err != nil {
		return nil, repoErr(err, "Receipt")
	}
	return receipt, nil
}

func (s *ReceiptService) GetByOrder(ctx context.Context, orderID string) (*domain.Receipt, error) {
	receipt, err := s.receipts.GetReceiptByOrder(ctx, orderID)
	if err != nil {
		return nil, repoErr(err, "Receipt")
	}
	return receipt, nil
}

func (s *ReceiptService) ListForUser(ctx context.Context, userID string) ([]domain.Receipt, error) {
	receipts, err := s.receipts.ListReceiptsForUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return receipts, nil
}

// Details joins a receipt with its refund request. A dangling refund link is
// reported as no refund.
func (s *ReceiptService) Details(ctx context.Context, receiptID string) (*domain.ReceiptDetails, error) {
	receipt, err := s.Get(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	details := &domain.ReceiptDetails{Receipt: *receipt}
	if receipt.RefundID == "" {
		return details, nil
	}

	refund, err := s.refunds.GetRefund(ctx, receipt.RefundID)
	switch {
	case err == nil:
		details.Refund = refund
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, apperr.Wrap(err)
	}
	return details, nil
}

var _ ReceiptServiceInterface = (*ReceiptService)(nil)
