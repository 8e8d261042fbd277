package checkout

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/radiantglow/shop-backend/internal/cart"
	"github.com/radiantglow/shop-backend/internal/order"
	"github.com/radiantglow/shop-backend/internal/product"
	"github.com/shopspring/decimal"
)

// CartStore is the slice of the cart service checkout needs.
type CartStore interface {
	GetCartLines(userID int) ([]cart.Line, error)
	ClearCart(userID int) error
}

// CatalogStore performs the conditional stock writes. DecrementStock must
// check sufficiency at write time and return product.ErrInsufficientStock
// when the precondition fails.
type CatalogStore interface {
	DecrementStock(id int, qty int) error
	RestoreStock(id int, qty int) error
}

// OrderLedger persists orders. Create must write the order and its lines as
// one unit.
type OrderLedger interface {
	Create(ord order.Order) (order.Order, error)
	UpdateStatus(id int, status order.Status) error
}

// Service turns a cart into a durable order while keeping stock counts
// consistent under concurrent buyers.
type Service struct {
	carts   CartStore
	catalog CatalogStore
	ledger  OrderLedger
}

func NewService(carts CartStore, catalog CatalogStore, ledger OrderLedger) *Service {
	return &Service{carts: carts, catalog: catalog, ledger: ledger}
}

// PlaceOrder runs the checkout:
//
//  1. read the cart joined with live product state
//  2. advisory stock pass, failing fast before any write
//  3. total from the freshly read prices
//  4. write order + lines to the ledger (status pending)
//  5. conditionally decrement stock per line; if any decrement loses its
//     race, restore the already-applied decrements and flip the order to
//     failed (never a silent partial success)
//  6. clear the cart
//
// If an Order is returned, its totals and lines are final and the stock was
// reserved exactly once.
func (s *Service) PlaceOrder(userID int, shippingAddress string) (order.Order, error) {
	if userID <= 0 {
		return order.Order{}, ErrInvalidUser
	}
	address := strings.TrimSpace(shippingAddress)
	if address == "" {
		return order.Order{}, ErrEmptyAddress
	}

	lines, err := s.carts.GetCartLines(userID)
	if err != nil {
		return order.Order{}, fmt.Errorf("read cart: %w", err)
	}
	if len(lines) == 0 {
		return order.Order{}, ErrEmptyCart
	}

	// Advisory pass: catches sold-out lines before anything is written. The
	// authoritative check is the conditional decrement below.
	for _, l := range lines {
		if !l.IsActive || l.Quantity > l.StockQuantity {
			return order.Order{}, &InsufficientStockError{ProductID: l.ProductID, ProductName: l.ProductName}
		}
	}

	total := decimal.Zero
	items := make([]order.Line, 0, len(lines))
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		items = append(items, order.Line{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
		})
	}

	now := time.Now().UTC()
	created, err := s.ledger.Create(order.Order{
		OrderNumber:     newOrderNumber(now),
		UserID:          userID,
		TotalPrice:      total,
		ShippingAddress: address,
		Status:          order.StatusPending,
		CreatedAt:       now.Format(time.RFC3339),
		Lines:           items,
	})
	if err != nil {
		return order.Order{}, fmt.Errorf("write order: %w", err)
	}

	// Reserve stock line by line; compensate on the first failure.
	for i, l := range lines {
		if err := s.catalog.DecrementStock(l.ProductID, l.Quantity); err != nil {
			s.compensate(created.ID, lines[:i])
			if errors.Is(err, product.ErrInsufficientStock) {
				return order.Order{}, ErrStockConflict
			}
			return order.Order{}, fmt.Errorf("reserve stock: %w", err)
		}
	}

	// The order is final from here on; a cart that fails to clear must not
	// undo the purchase.
	if err := s.carts.ClearCart(userID); err != nil {
		fmt.Printf("warning: could not clear cart for user %d after order %s: %v\n", userID, created.OrderNumber, err)
	}
	return created, nil
}

// compensate restores stock for the lines already decremented and marks the
// order failed so downstream tooling can detect and reconcile it.
func (s *Service) compensate(orderID int, applied []cart.Line) {
	for _, l := range applied {
		if err := s.catalog.RestoreStock(l.ProductID, l.Quantity); err != nil {
			fmt.Printf("warning: could not restore stock for product %d (order %d): %v\n", l.ProductID, orderID, err)
		}
	}
	if err := s.ledger.UpdateStatus(orderID, order.StatusFailed); err != nil {
		fmt.Printf("warning: could not mark order %d failed: %v\n", orderID, err)
	}
}
