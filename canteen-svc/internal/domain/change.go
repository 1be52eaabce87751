package domain

const (
	ChannelOrders  = "orders:changed"
	ChannelRefunds = "refunds:changed"
)

// Change announces that the document with ID on Channel was written.
type Change struct {
	Channel string
	ID      string
}
