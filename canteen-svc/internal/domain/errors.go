package domain

import "errors"

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("record already exists")
	ErrInvalidPassword   = errors.New("invalid email or password")
	ErrInsufficientStock = errors.New("not enough stock for menu item")
	ErrRefundNotPending  = errors.New("refund is no longer pending")
)

// Credentials carries either an email/password pair or an identity-provider ID token.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IDToken  string `json:"idToken"`
}

type OrderFilter struct {
	UserID string
	Status string
}
