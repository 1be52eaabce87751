package storage

import (
	"context"
	"database/sql"

	"canteen/analytics-svc/internal/domain"
)

// PostgresRepository runs report queries against the canteen tables.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) SalesTotals(ctx context.Context, rng domain.Range) (*domain.SalesTotals, error) {
	var totals domain.SalesTotals

	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
	`, rng.From, rng.To).Scan(&totals.Orders, &totals.Revenue); err != nil {
		return nil, err
	}

	if err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2
	`, rng.From, rng.To).Scan(&totals.ItemsSold); err != nil {
		return nil, err
	}

	if err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(o.total_amount), 0)
		FROM refunds r
		JOIN orders o ON o.id = r.order_id
		WHERE r.status = 'approved' AND r.request_time >= $1 AND r.request_time < $2
	`, rng.From, rng.To).Scan(&totals.Refunds, &totals.Refunded); err != nil {
		return nil, err
	}

	return &totals, nil
}

func (r *PostgresRepository) OrdersBetween(ctx context.Context, rng domain.Range) ([]domain.OrderPoint, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT created_at, total_amount, status
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at
	`, rng.From, rng.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []domain.OrderPoint{}
	for rows.Next() {
		var p domain.OrderPoint
		if err := rows.Scan(&p.CreatedAt, &p.TotalAmount, &p.Status); err != nil {
			continue
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *PostgresRepository) TopItems(ctx context.Context, rng domain.Range, limit int) ([]domain.TopItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.menu_item_id, MAX(oi.name), SUM(oi.quantity) AS sold
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.created_at >= $1 AND o.created_at < $2
		GROUP BY oi.menu_item_id
		ORDER BY sold DESC, oi.menu_item_id
		LIMIT $3
	`, rng.From, rng.To, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.TopItem{}
	for rows.Next() {
		var item domain.TopItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Quantity); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) countBy(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			continue
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

func (r *PostgresRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "SELECT status, COUNT(*) FROM orders GROUP BY status")
}

func (r *PostgresRepository) RefundCounts(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, "SELECT status, COUNT(*) FROM refunds GROUP BY status")
}
