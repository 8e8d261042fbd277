package report

import "github.com/shopspring/decimal"

// Stats are the admin dashboard aggregates. They are pure read-side
// derivations over orders and products: no locks, eventually consistent
// with in-flight checkouts.
type Stats struct {
	Revenue       decimal.Decimal `json:"revenue"`
	TotalOrders   int             `json:"totalOrders"`
	TotalProducts int             `json:"totalProducts"`
	LowStock      int             `json:"lowStock"`
}
