package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"canteen/apperr"
	"canteen/canteen-svc/internal/domain"
	"canteen/events"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RefundInput struct {
	OrderID string `json:"orderId" validate:"required"`
	Reason  string `json:"reason" validate:"required"`
	Detail  string `json:"detail"`
}

type Decision struct {
	Approve bool   `json:"approve"`
	Remark  string `json:"remark"`
}

type RefundService struct {
	refunds  RefundRepository
	orders   OrderRepository
	events   EventPublisher
	notifier ChangeNotifier
	log      *logrus.Entry
}

func NewRefundService(refunds RefundRepository, orders OrderRepository, pub EventPublisher, notifier ChangeNotifier, log *logrus.Entry) *RefundService {
	return &RefundService{refunds: refunds, orders: orders, events: pub, notifier: notifier, log: log}
}

// Request files a refund for one of the user's own orders. Only one pending or
// approved refund may exist per order.
func (s *RefundService) Request(ctx context.Context, userID string, in RefundInput) (*domain.RefundRequest, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	in.Detail = strings.TrimSpace(in.Detail)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	order, err := s.orders.GetOrder(ctx, in.OrderID)
	if err != nil {
		return nil, repoErr(err, "Order")
	}
	if order.UserID != userID {
		return nil, apperr.ForbiddenErr("You can only request refunds for your own orders.").With(ErrNotOrderOwner)
	}

	active, err := s.refunds.ActiveRefundForOrder(ctx, in.OrderID)
	switch {
	case err == nil && active != nil:
		return nil, apperr.ConflictErr("A refund has already been requested for this order.").With(ErrRefundExists)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, apperr.Wrap(err)
	}

	refund := &domain.RefundRequest{
		RefundID:    uuid.NewString(),
		OrderID:     in.OrderID,
		Reason:      in.Reason,
		Detail:      in.Detail,
		RequestTime: time.Now().UTC(),
		Status:      domain.RefundPending,
	}
	if err := s.refunds.CreateRefund(ctx, refund); err != nil {
		return nil, apperr.Wrap(err)
	}

	logger := s.log.WithFields(logrus.Fields{"refund_id": refund.RefundID, "order_id": refund.OrderID})
	notifyChange(ctx, s.notifier, logger, domain.ChannelRefunds, refund.RefundID)
	notifyChange(ctx, s.notifier, logger, domain.ChannelOrders, refund.OrderID)
	logger.Info("refund requested")
	return refund, nil
}

func (s *RefundService) Get(ctx context.Context, refundID string) (*domain.RefundRequest, error) {
	refund, err := s.refunds.GetRefund(ctx, refundID)
	if err != nil {
		return nil, repoErr(err, "Refund")
	}
	return refund, nil
}

func (s *RefundService) List(ctx context.Context, status string) ([]domain.RefundRequest, error) {
	switch status {
	case "", domain.RefundPending, domain.RefundApproved, domain.RefundRejected:
	default:
		return nil, apperr.InvalidErr("Unknown refund status.", map[string]string{"status": "Unknown status."})
	}
	refunds, err := s.refunds.ListRefunds(ctx, status)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return refunds, nil
}

// Review approves or rejects a pending refund. Approval marks the order
// REFUNDED in the same write.
func (s *RefundService) Review(ctx context.Context, refundID, staffID string, decision Decision) (*domain.RefundRequest, error) {
	refund, err := s.Get(ctx, refundID)
	if err != nil {
		return nil, err
	}
	if refund.Status != domain.RefundPending {
		return nil, apperr.ConflictErr("This refund has already been reviewed.").With(ErrRefundReviewed)
	}

	refund.Remark = strings.TrimSpace(decision.Remark)
	refund.RefundBy = staffID
	orderStatus := ""
	if decision.Approve {
		refund.Status = domain.RefundApproved
		orderStatus = domain.StatusRefunded
	} else {
		refund.Status = domain.RefundRejected
	}

	if err := s.refunds.ReviewRefund(ctx, refund, orderStatus); err != nil {
		if errors.Is(err, domain.ErrRefundNotPending) {
			return nil, apperr.ConflictErr("This refund has already been reviewed.").With(ErrRefundReviewed)
		}
		return nil, repoErr(err, "Refund")
	}

	logger := s.log.WithFields(logrus.Fields{"refund_id": refund.RefundID, "order_id": refund.OrderID, "status": refund.Status})

	msg := events.OrderMessage{
		Type:         events.RefundReviewed,
		OrderID:      refund.OrderID,
		RefundID:     refund.RefundID,
		RefundStatus: refund.Status,
		Timestamp:    time.Now().UTC(),
	}
	if order, err := s.orders.GetOrder(ctx, refund.OrderID); err == nil {
		msg.UserID = order.UserID
		msg.Status = order.Status
		msg.TotalAmount = order.TotalAmount
	} else {
		logger.WithError(err).Warn("failed to load order for refund event")
	}

	publishEvent(ctx, s.events, logger, msg)
	notifyChange(ctx, s.notifier, logger, domain.ChannelRefunds, refund.RefundID)
	notifyChange(ctx, s.notifier, logger, domain.ChannelOrders, refund.OrderID)
	logger.Info("refund reviewed")
	return refund, nil
}

var _ RefundServiceInterface = (*RefundService)(nil)
