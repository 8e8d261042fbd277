package checkout

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUser  = errors.New("invalid user")
	ErrEmptyAddress = errors.New("shipping address is required")
	ErrEmptyCart    = errors.New("cart is empty, nothing to checkout")

	// ErrStockConflict means a conditional decrement lost its race after the
	// advisory pass succeeded. The order was compensated and marked failed;
	// the cart is untouched so the buyer can simply retry.
	ErrStockConflict = errors.New("could not complete order, please retry")
)

// InsufficientStockError names the product that failed the advisory stock
// pass, so the buyer can adjust that line.
type InsufficientStockError struct {
	ProductID   int
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName != "" {
		return fmt.Sprintf("insufficient stock for %q", e.ProductName)
	}
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}
