package events

import "time"

const (
	OrderCreated       = "order_created"
	OrderStatusChanged = "order_status_changed"
	RefundReviewed     = "refund_reviewed"
)

// RefundApproved is the RefundStatus of an accepted refund.
const RefundApproved = "approved"

// OrderMessage is the payload written to the orders topic.
type OrderMessage struct {
	Type         string      `json:"type"`
	OrderID      string      `json:"order_id"`
	UserID       string      `json:"user_id,omitempty"`
	Status       string      `json:"status,omitempty"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []OrderLine `json:"items,omitempty"`
	RefundID     string      `json:"refund_id,omitempty"`
	RefundStatus string      `json:"refund_status,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
}

type OrderLine struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// DayKey formats the reporting day used in aggregate keys.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
