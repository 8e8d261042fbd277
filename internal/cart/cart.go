package cart

import "github.com/shopspring/decimal"

// Line is a cart entry joined with the current product state. Checkout
// reads these fresh; the price here is the live catalog price, never a
// value cached by the client.
type Line struct {
	ProductID     int             `json:"productId"`
	Quantity      int             `json:"quantity"`
	ProductName   string          `json:"productName"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	StockQuantity int             `json:"stockQuantity"`
	IsActive      bool            `json:"isActive"`
}
