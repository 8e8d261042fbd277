package order

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the order row and all of its lines inside one transaction;
// a failure on any line rolls back the whole order.
func (r *PostgresRepository) Create(ord Order) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(`INSERT INTO orders (order_number, user_id, total_price, shipping_address, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`,
		ord.OrderNumber, ord.UserID, ord.TotalPrice, ord.ShippingAddress, ord.Status, ord.CreatedAt).Scan(&ord.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return Order{}, ErrDuplicateOrderNumber
		}
		return Order{}, fmt.Errorf("insert order: %w", err)
	}

	for i := range ord.Lines {
		ord.Lines[i].OrderID = ord.ID
		_, err := tx.Exec(`INSERT INTO order_items (order_id, product_id, product_name, unit_price, quantity)
            VALUES ($1,$2,$3,$4,$5)`,
			ord.ID, ord.Lines[i].ProductID, ord.Lines[i].ProductName, ord.Lines[i].UnitPrice, ord.Lines[i].Quantity)
		if err != nil {
			return Order{}, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, fmt.Errorf("commit order: %w", err)
	}
	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(`SELECT id, order_number, user_id, total_price, shipping_address, status, created_at
        FROM orders WHERE id = $1`, id)

	ord, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, fmt.Errorf("get order: %w", err)
	}

	orders := []Order{ord}
	if err := r.attachLines(orders); err != nil {
		return Order{}, err
	}
	return orders[0], nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	return r.list(`SELECT id, order_number, user_id, total_price, shipping_address, status, created_at
        FROM orders WHERE user_id = $1 ORDER BY id DESC`, userID)
}

func (r *PostgresRepository) ListAll() ([]Order, error) {
	return r.list(`SELECT id, order_number, user_id, total_price, shipping_address, status, created_at
        FROM orders ORDER BY id DESC`)
}

func (r *PostgresRepository) UpdateStatus(id int, status Status) error {
	res, err := r.db.Exec(`UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) list(query string, args ...any) ([]Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLines(orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachLines hydrates the lines for a batch of orders with a single query.
func (r *PostgresRepository) attachLines(orders []Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int, 0, len(orders))
	byID := make(map[int]*Order, len(orders))
	for i := range orders {
		ids = append(ids, orders[i].ID)
		byID[orders[i].ID] = &orders[i]
		orders[i].Lines = make([]Line, 0)
	}

	rows, err := r.db.Query(`SELECT order_id, product_id, product_name, unit_price, quantity
        FROM order_items
        WHERE order_id = ANY($1::int[])
        ORDER BY order_id, product_id`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.OrderID, &l.ProductID, &l.ProductName, &l.UnitPrice, &l.Quantity); err != nil {
			return err
		}
		if ord, ok := byID[l.OrderID]; ok {
			ord.Lines = append(ord.Lines, l)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	var createdAt sql.NullString
	if err := row.Scan(&ord.ID, &ord.OrderNumber, &ord.UserID, &ord.TotalPrice, &ord.ShippingAddress, &ord.Status, &createdAt); err != nil {
		return Order{}, err
	}
	ord.CreatedAt = createdAt.String
	return ord, nil
}

func isUniqueViolation(err error) bool {
	// pgx wraps postgres errors; code 23505 is unique_violation
	return err != nil && strings.Contains(err.Error(), "23505")
}
