package product

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

const productColumns = `id, name, description, price, stock_quantity, units_sold, is_active, image_url, created_at`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products ORDER BY id`)
}

func (r *PostgresRepository) ListActive() ([]Product, error) {
	return r.queryProducts(`SELECT ` + productColumns + ` FROM products WHERE is_active ORDER BY id`)
}

func (r *PostgresRepository) queryProducts(query string, args ...any) ([]Product, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	return p, err
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`INSERT INTO products (name, description, price, stock_quantity, units_sold, is_active, image_url, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`,
		p.Name, p.Description, p.Price, p.StockQuantity, p.UnitsSold, p.IsActive, p.ImageURL, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(`UPDATE products
        SET name = $1, description = $2, price = $3, stock_quantity = $4, is_active = $5, image_url = $6
        WHERE id = $7`,
		p.Name, p.Description, p.Price, p.StockQuantity, p.IsActive, p.ImageURL, id)
	if err != nil {
		return Product{}, fmt.Errorf("update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

// DecrementStock is a single conditional UPDATE: the stock check happens at
// write time, so concurrent checkouts of the same product cannot drive
// stock_quantity negative. units_sold is adjusted in the same statement.
func (r *PostgresRepository) DecrementStock(id int, qty int) error {
	res, err := r.db.Exec(`UPDATE products
        SET stock_quantity = stock_quantity - $2, units_sold = units_sold + $2
        WHERE id = $1 AND is_active AND stock_quantity >= $2`,
		id, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (r *PostgresRepository) RestoreStock(id int, qty int) error {
	res, err := r.db.Exec(`UPDATE products
        SET stock_quantity = stock_quantity + $2, units_sold = GREATEST(units_sold - $2, 0)
        WHERE id = $1`,
		id, qty)
	if err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	var desc, createdAt sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &desc, &p.Price, &p.StockQuantity, &p.UnitsSold, &p.IsActive, &p.ImageURL, &createdAt); err != nil {
		return Product{}, err
	}
	p.Description = desc.String
	p.CreatedAt = createdAt.String
	return p, nil
}
