package storage

import (
	"context"
	"fmt"

	"canteen/canteen-svc/internal/domain"

	"github.com/lib/pq"
)

// CreateOrder reserves stock, then writes the order, its items and the receipt
// in one transaction.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order, receipt *domain.Receipt) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range order.Items {
		result, err := tx.ExecContext(ctx, `
			UPDATE menu_items
			SET remain_quantity = remain_quantity - $1
			WHERE id = $2 AND remain_quantity >= $1`, item.Quantity, item.MenuItemID)
		if err != nil {
			return err
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, item.MenuItemID)
		}
	}

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, user_id, total_amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, order.OrderID, order.UserID, order.TotalAmount, order.Status).Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.OrderID, item.MenuItemID, item.Name, item.Price, item.Quantity); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO receipts (id, order_id, payment_date, payment_method, pay_amount)
		VALUES ($1, $2, $3, $4, $5)
	`, receipt.ReceiptID, receipt.OrderID, receipt.PaymentDate, receipt.PaymentMethod, receipt.PayAmount); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID string, qr []byte) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID string) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, notFound(err)
	}
	return qrCode, nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, total_amount, status, created_at, updated_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.OrderID, &order.UserID, &order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, notFound(err)
	}

	items, err := r.orderItems(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}
	order.Items = items[orderID]
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	return &order, nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, total_amount, status, created_at, updated_at
		FROM orders
		WHERE ($1 = '' OR user_id = $1) AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`, filter.UserID, filter.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	ids := []string{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.OrderID, &order.UserID, &order.TotalAmount, &order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
		ids = append(ids, order.OrderID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.orderItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].OrderID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}
	return orders, nil
}

func (r *PostgresRepository) orderItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT order_id, menu_item_id, name, price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var item domain.OrderItem
		if err := rows.Scan(&orderID, &item.MenuItemID, &item.Name, &item.Price, &item.Quantity); err != nil {
			continue
		}
		items[orderID] = append(items[orderID], item)
	}
	return items, rows.Err()
}

// UpdateOrderStatus overwrites the status unconditionally.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2", status, orderID)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *PostgresRepository) DeleteOrder(ctx context.Context, orderID string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", orderID)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

const receiptColumns = "r.id, r.order_id, r.payment_date, r.payment_method, r.pay_amount, COALESCE(r.refund_id, '')"

func scanReceipt(row rowScanner) (domain.Receipt, error) {
	var rc domain.Receipt
	err := row.Scan(&rc.ReceiptID, &rc.OrderID, &rc.PaymentDate, &rc.PaymentMethod, &rc.PayAmount, &rc.RefundID)
	return rc, err
}

func (r *PostgresRepository) GetReceipt(ctx context.Context, receiptID string) (*domain.Receipt, error) {
	rc, err := scanReceipt(r.DB.QueryRowContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts r WHERE r.id = $1", receiptID))
	if err != nil {
		return nil, notFound(err)
	}
	return &rc, nil
}

func (r *PostgresRepository) GetReceiptByOrder(ctx context.Context, orderID string) (*domain.Receipt, error) {
	rc, err := scanReceipt(r.DB.QueryRowContext(ctx,
		"SELECT "+receiptColumns+" FROM receipts r WHERE r.order_id = $1", orderID))
	if err != nil {
		return nil, notFound(err)
	}
	return &rc, nil
}

func (r *PostgresRepository) ListReceiptsForUser(ctx context.Context, userID string) ([]domain.Receipt, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+receiptColumns+`
		FROM receipts r
		JOIN orders o ON o.id = r.order_id
		WHERE o.user_id = $1
		ORDER BY r.payment_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipts := []domain.Receipt{}
	for rows.Next() {
		rc, err := scanReceipt(rows)
		if err != nil {
			continue
		}
		receipts = append(receipts, rc)
	}
	return receipts, rows.Err()
}
