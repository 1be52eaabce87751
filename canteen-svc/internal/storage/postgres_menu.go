package storage

import (
	"context"

	"canteen/canteen-svc/internal/domain"

	"github.com/lib/pq"
)

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)",
		c.ID, c.Name, c.Description)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, description FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			continue
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRowContext(ctx, "SELECT id, name, description FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE categories SET name = $1, description = $2 WHERE id = $3",
		c.Name, c.Description, c.ID)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

const menuItemColumns = "id, name, description, price, category_id, remain_quantity, image_url, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var m domain.MenuItem
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.CategoryID, &m.RemainQuantity, &m.ImageURL, &m.CreatedAt)
	return m, err
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO menu_items (id, name, description, price, category_id, remain_quantity, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`,
		m.ID, m.Name, m.Description, m.Price, m.CategoryID, m.RemainQuantity, m.ImageURL,
	).Scan(&m.CreatedAt)
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE ($1 = '' OR category_id = $1)
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY name`, filter.CategoryID, filter.Query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	m, err := scanMenuItem(r.DB.QueryRowContext(ctx, "SELECT "+menuItemColumns+" FROM menu_items WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}

// GetMenuItems loads the given ids; missing ids are absent from the map.
func (r *PostgresRepository) GetMenuItems(ctx context.Context, ids []string) (map[string]domain.MenuItem, error) {
	items := make(map[string]domain.MenuItem, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+menuItemColumns+" FROM menu_items WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			continue
		}
		items[m.ID] = m
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateMenuItem(ctx context.Context, m *domain.MenuItem) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category_id = $4, remain_quantity = $5, image_url = $6
		WHERE id = $7`,
		m.Name, m.Description, m.Price, m.CategoryID, m.RemainQuantity, m.ImageURL, m.ID)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *PostgresRepository) DeleteMenuItem(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *PostgresRepository) SetRemainQuantity(ctx context.Context, id string, quantity int) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE menu_items SET remain_quantity = $1 WHERE id = $2", quantity, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *PostgresRepository) UpdateMenuItemImage(ctx context.Context, id, imageURL string) error {
	result, err := r.DB.ExecContext(ctx, "UPDATE menu_items SET image_url = $1 WHERE id = $2", imageURL, id)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}
