package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BucketDay   = "day"
	BucketWeek  = "week"
	BucketMonth = "month"
)

var (
	OrderStatuses  = []string{"PENDING", "READY TO PICKUP", "COMPLETED", "REFUNDED"}
	RefundStatuses = []string{"pending", "approved", "rejected"}
)

// Range is a half-open interval [From, To) of whole UTC days.
type Range struct {
	From time.Time
	To   time.Time
}

// SingleDay reports whether the range covers exactly one day.
func (r Range) SingleDay() bool {
	return r.To.Sub(r.From) == 24*time.Hour
}

// SalesTotals are the raw sums a report is derived from.
type SalesTotals struct {
	Orders    int
	Revenue   decimal.Decimal
	ItemsSold int
	Refunds   int
	Refunded  decimal.Decimal
}

type Summary struct {
	From              string  `json:"from"`
	To                string  `json:"to"`
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders"`
	ItemsSold         int     `json:"itemsSold"`
	Refunds           int     `json:"refunds"`
	Refunded          float64 `json:"refunded"`
	NetRevenue        float64 `json:"netRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// OrderPoint is one order as seen by trend bucketing.
type OrderPoint struct {
	CreatedAt   time.Time
	TotalAmount decimal.Decimal
	Status      string
}

type TrendBucket struct {
	Start   time.Time `json:"start"`
	Label   string    `json:"label"`
	Revenue float64   `json:"revenue"`
	Orders  int       `json:"orders"`
}

type TopItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// DailyCounters are the live aggregates for one day.
type DailyCounters struct {
	Day      string         `json:"day"`
	Revenue  float64        `json:"revenue"`
	Orders   int            `json:"orders"`
	Items    int            `json:"items"`
	Refunded float64        `json:"refunded"`
	Refunds  int            `json:"refunds"`
	Statuses map[string]int `json:"statuses"`
}
