package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
)

const (
	StatusPending       = "PENDING"
	StatusReadyToPickup = "READY TO PICKUP"
	StatusCompleted     = "COMPLETED"
	StatusRefunded      = "REFUNDED"
)

const (
	RefundPending  = "pending"
	RefundApproved = "approved"
	RefundRejected = "rejected"
)

const (
	PaymentCash    = "cash"
	PaymentCard    = "card"
	PaymentEWallet = "ewallet"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPending, StatusReadyToPickup, StatusCompleted, StatusRefunded:
		return true
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsStaff() bool { return u != nil && u.Role == RoleStaff }

type Session struct {
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type MenuItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name" validate:"required"`
	Description    string    `json:"description"`
	Price          float64   `json:"price" validate:"gt=0"`
	CategoryID     string    `json:"categoryId"`
	RemainQuantity int       `json:"remainQuantity" validate:"gte=0"`
	ImageURL       string    `json:"imageUrl"`
	CreatedAt      time.Time `json:"created_at"`
}

type MenuFilter struct {
	CategoryID string
	Query      string
}

type CartItem struct {
	MenuItem   MenuItem `json:"menuItem"`
	Quantity   int      `json:"quantity"`
	TotalPrice float64  `json:"totalPrice"`
}

// LineTotal is price × quantity rounded to cents.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

type Cart struct {
	UserID      string     `json:"userId"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}

type OrderItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	OrderID     string      `json:"orderId"`
	UserID      string      `json:"userId"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      string      `json:"status"`
	QRCode      string      `json:"qr_code,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type Receipt struct {
	ReceiptID     string    `json:"receiptId"`
	OrderID       string    `json:"orderId"`
	PaymentDate   time.Time `json:"payment_Date"`
	PaymentMethod string    `json:"payment_Method"`
	PayAmount     float64   `json:"pay_Amount"`
	RefundID      string    `json:"refund,omitempty"`
}

type RefundRequest struct {
	RefundID    string    `json:"refundId"`
	OrderID     string    `json:"orderId"`
	Reason      string    `json:"reason"`
	Detail      string    `json:"detail"`
	RequestTime time.Time `json:"requestTime"`
	RefundBy    string    `json:"refundBy"`
	Remark      string    `json:"remark"`
	Status      string    `json:"status"`
}

// ReceiptDetails is a receipt joined with its refund request, if any.
type ReceiptDetails struct {
	Receipt Receipt        `json:"receipt"`
	Refund  *RefundRequest `json:"refund,omitempty"`
}

type CheckoutResult struct {
	Order   *Order   `json:"order"`
	Receipt *Receipt `json:"receipt"`
}

// Upload describes an object handed to object storage.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
}

type StoredObject struct {
	Key string
	URL string
}
