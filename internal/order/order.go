package order

import "github.com/shopspring/decimal"

// Order is a durable record of a completed checkout. Everything except
// Status is immutable after creation; TotalPrice always equals the sum of
// its lines' unitPrice x quantity as of creation time.
type Order struct {
	ID              int             `json:"orderId"`
	OrderNumber     string          `json:"orderNumber"`
	UserID          int             `json:"userId"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	ShippingAddress string          `json:"shippingAddress"`
	Status          Status          `json:"status"`
	CreatedAt       string          `json:"createdAt"`
	Lines           []Line          `json:"items"`
}

// Line snapshots the product name and unit price at order-creation time, so
// renaming, repricing or deactivating the product never rewrites history.
type Line struct {
	OrderID     int             `json:"orderId"`
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}
