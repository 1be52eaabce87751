package storage

import (
	"context"
	"errors"

	"canteen/canteen-svc/internal/domain"
)

const refundColumns = "id, order_id, reason, detail, request_time, refund_by, remark, status"

func scanRefund(row rowScanner) (domain.RefundRequest, error) {
	var rf domain.RefundRequest
	err := row.Scan(&rf.RefundID, &rf.OrderID, &rf.Reason, &rf.Detail, &rf.RequestTime, &rf.RefundBy, &rf.Remark, &rf.Status)
	return rf, err
}

// CreateRefund inserts the request and links it from the order's receipt.
func (r *PostgresRepository) CreateRefund(ctx context.Context, refund *domain.RefundRequest) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO refunds (id, order_id, reason, detail, request_time, refund_by, remark, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, refund.RefundID, refund.OrderID, refund.Reason, refund.Detail, refund.RequestTime,
		refund.RefundBy, refund.Remark, refund.Status); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE receipts SET refund_id = $1 WHERE order_id = $2", refund.RefundID, refund.OrderID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetRefund(ctx context.Context, refundID string) (*domain.RefundRequest, error) {
	rf, err := scanRefund(r.DB.QueryRowContext(ctx, "SELECT "+refundColumns+" FROM refunds WHERE id = $1", refundID))
	if err != nil {
		return nil, notFound(err)
	}
	return &rf, nil
}

func (r *PostgresRepository) ListRefunds(ctx context.Context, status string) ([]domain.RefundRequest, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+refundColumns+`
		FROM refunds
		WHERE ($1 = '' OR status = $1)
		ORDER BY request_time DESC`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refunds := []domain.RefundRequest{}
	for rows.Next() {
		rf, err := scanRefund(rows)
		if err != nil {
			continue
		}
		refunds = append(refunds, rf)
	}
	return refunds, rows.Err()
}

// ActiveRefundForOrder returns the pending or approved refund of an order.
func (r *PostgresRepository) ActiveRefundForOrder(ctx context.Context, orderID string) (*domain.RefundRequest, error) {
	rf, err := scanRefund(r.DB.QueryRowContext(ctx, `
		SELECT `+refundColumns+`
		FROM refunds
		WHERE order_id = $1 AND status IN ('pending', 'approved')
		ORDER BY request_time DESC
		LIMIT 1`, orderID))
	if err != nil {
		return nil, notFound(err)
	}
	return &rf, nil
}

// ReviewRefund records the decision on a pending refund; a non-empty orderStatus
// is written to the order in the same transaction.
func (r *PostgresRepository) ReviewRefund(ctx context.Context, refund *domain.RefundRequest, orderStatus string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE refunds SET status = $1, remark = $2, refund_by = $3 WHERE id = $4 AND status = $5",
		refund.Status, refund.Remark, refund.RefundBy, refund.RefundID, domain.RefundPending)
	if err != nil {
		return err
	}
	if err := expectOneRow(result); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrRefundNotPending
		}
		return err
	}

	if orderStatus != "" {
		if _, err := tx.ExecContext(ctx,
			"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2",
			orderStatus, refund.OrderID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
