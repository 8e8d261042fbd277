package product

import "github.com/shopspring/decimal"

// Product represents a catalog product. Stock is mutated only through the
// conditional DecrementStock / RestoreStock repository operations so the
// stockQuantity >= 0 invariant holds under concurrent checkouts.
type Product struct {
	ID            int             `json:"productId"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	UnitsSold     int             `json:"unitsSold"`
	IsActive      bool            `json:"isActive"`
	ImageURL      *string         `json:"imageUrl,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
}
