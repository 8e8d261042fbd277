package report

import (
	"github.com/radiantglow/shop-backend/internal/order"
	"github.com/radiantglow/shop-backend/internal/product"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Stats computes the aggregates; threshold is the stock level at or
	// below which an active product counts as low stock.
	Stats(threshold int) (Stats, error)
}

// InMemoryRepository derives the stats from the in-memory stores, used for
// tests and local scenarios.
type InMemoryRepository struct {
	orders   order.Repository
	products product.Repository
}

func NewInMemoryRepository(orders order.Repository, products product.Repository) *InMemoryRepository {
	return &InMemoryRepository{orders: orders, products: products}
}

func (r *InMemoryRepository) Stats(threshold int) (Stats, error) {
	orders, err := r.orders.ListAll()
	if err != nil {
		return Stats{}, err
	}
	products, err := r.products.List()
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Revenue:       decimal.Zero,
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}
	for _, ord := range orders {
		if ord.Status == order.StatusDelivered {
			stats.Revenue = stats.Revenue.Add(ord.TotalPrice)
		}
	}
	for _, p := range products {
		if p.IsActive && p.StockQuantity <= threshold {
			stats.LowStock++
		}
	}
	return stats, nil
}
