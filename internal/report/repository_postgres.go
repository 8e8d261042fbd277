package report

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Stats(threshold int) (Stats, error) {
	var stats Stats

	err := r.db.QueryRow(`SELECT COUNT(*),
        COALESCE(SUM(total_price) FILTER (WHERE status = 'delivered'), 0)
        FROM orders`).Scan(&stats.TotalOrders, &stats.Revenue)
	if err != nil {
		return Stats{}, fmt.Errorf("order stats: %w", err)
	}

	err = r.db.QueryRow(`SELECT COUNT(*),
        COUNT(*) FILTER (WHERE is_active AND stock_quantity <= $1)
        FROM products`, threshold).Scan(&stats.TotalProducts, &stats.LowStock)
	if err != nil {
		return Stats{}, fmt.Errorf("product stats: %w", err)
	}

	return stats, nil
}
