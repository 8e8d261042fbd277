package cart

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const getCartQuery = `
        SELECT ci.product_id, ci.quantity, p.name, p.price, p.stock_quantity, p.is_active
        FROM cart_items ci
        JOIN products p ON p.id = ci.product_id
        WHERE ci.user_id = $1
        ORDER BY ci.product_id
    `

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetCartLines(userID int) ([]Line, error) {
	rows, err := r.db.Query(getCartQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	defer rows.Close()

	out := make([]Line, 0)
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.ProductName, &l.UnitPrice, &l.StockQuantity, &l.IsActive); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) SetItem(userID int, productID int, qty int) ([]Line, error) {
	if qty <= 0 {
		return r.RemoveItem(userID, productID)
	}

	// verify the product exists so the cart never references a ghost row
	var exists bool
	if err := r.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	_, err := r.db.Exec(`INSERT INTO cart_items (user_id, product_id, quantity)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = EXCLUDED.quantity`,
		userID, productID, qty)
	if err != nil {
		return nil, fmt.Errorf("set cart item: %w", err)
	}
	return r.GetCartLines(userID)
}

func (r *PostgresRepository) RemoveItem(userID int, productID int) ([]Line, error) {
	if _, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`, userID, productID); err != nil {
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return r.GetCartLines(userID)
}

func (r *PostgresRepository) ClearCart(userID int) error {
	if _, err := r.db.Exec(`DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
