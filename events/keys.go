package events

// Redis keys written by agg-svc and read by analytics-svc.

// DailySalesKey is a hash with revenue, orders, items, refunded and refunds.
func DailySalesKey(day string) string {
	return "sales:daily:" + day
}

// DailyItemsKey is a sorted set of menu item id scored by quantity sold.
func DailyItemsKey(day string) string {
	return DailySalesKey(day) + ":items"
}

// DailyStatusKey counts status changes per status name.
func DailyStatusKey(day string) string {
	return "status:" + day
}

// ItemNamesKey maps menu item id to the last name seen in an order.
const ItemNamesKey = "sales:items:names"

const (
	FieldRevenue  = "revenue"
	FieldOrders   = "orders"
	FieldItems    = "items"
	FieldRefunded = "refunded"
	FieldRefunds  = "refunds"
)
