package storage

import (
	"context"
	"errors"
	"strings"

	"canteen/canteen-svc/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const userColumns = "id, email, name, role, phone, created_at"

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO users (id, email, name, role, phone) VALUES ($1, $2, $3, $4, $5) RETURNING created_at",
		user.ID, strings.ToLower(user.Email), user.Name, user.Role, user.Phone,
	).Scan(&user.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *PostgresRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Phone, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", strings.ToLower(email)).
		Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Phone, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE users SET name = $1, phone = $2 WHERE id = $3",
		user.Name, user.Phone, user.ID)
	if err != nil {
		return err
	}
	return expectOneRow(result)
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role, &u.Phone, &u.CreatedAt); err != nil {
			continue
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// LocalIdentity keeps bcrypt password hashes in the credentials table.
type LocalIdentity struct {
	Repo *PostgresRepository
	Cost int
}

func NewLocalIdentity(repo *PostgresRepository) *LocalIdentity {
	return &LocalIdentity{Repo: repo, Cost: bcrypt.DefaultCost}
}

func (l *LocalIdentity) CreateIdentity(ctx context.Context, email, password, _ string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), l.Cost)
	if err != nil {
		return "", err
	}
	uid := uuid.NewString()
	_, err = l.Repo.DB.ExecContext(ctx,
		"INSERT INTO credentials (email, uid, password_hash) VALUES ($1, $2, $3)",
		strings.ToLower(email), uid, hash)
	if isUniqueViolation(err) {
		return "", domain.ErrDuplicate
	}
	if err != nil {
		return "", err
	}
	return uid, nil
}

func (l *LocalIdentity) VerifyCredentials(ctx context.Context, creds domain.Credentials) (string, error) {
	if creds.Email == "" || creds.Password == "" {
		return "", domain.ErrInvalidPassword
	}

	var uid string
	var hash []byte
	err := l.Repo.DB.QueryRowContext(ctx,
		"SELECT uid, password_hash FROM credentials WHERE email = $1",
		strings.ToLower(creds.Email)).Scan(&uid, &hash)
	if err != nil {
		if errors.Is(notFound(err), domain.ErrNotFound) {
			return "", domain.ErrInvalidPassword
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(creds.Password)); err != nil {
		return "", domain.ErrInvalidPassword
	}
	return uid, nil
}

// DeleteIdentity removes the credentials of uid. Missing rows are not an error.
func (l *LocalIdentity) DeleteIdentity(ctx context.Context, uid string) error {
	_, err := l.Repo.DB.ExecContext(ctx, "DELETE FROM credentials WHERE uid = $1", uid)
	return err
}
