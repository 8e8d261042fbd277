package main

import (
	"database/sql"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/radiantglow/shop-backend/internal/cart"
	"github.com/radiantglow/shop-backend/internal/checkout"
	"github.com/radiantglow/shop-backend/internal/config"
	"github.com/radiantglow/shop-backend/internal/order"
	"github.com/radiantglow/shop-backend/internal/product"
	"github.com/radiantglow/shop-backend/internal/report"
	"github.com/radiantglow/shop-backend/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	bootstrapSchema(db)

	userService := user.NewService(user.NewPostgresRepository(db))

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandler(productService, userService)

	cartService := cart.NewService(cart.NewPostgresRepository(db))
	cartHandler := cart.NewHandler(cartService)

	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderService, userService)

	// the orchestrator owns the checkout unit of work: cart read, ledger
	// write, conditional stock decrements, cart clear
	checkoutService := checkout.NewService(cartService, productRepo, orderRepo)
	checkoutHandler := checkout.NewHandler(checkoutService, userService)

	reportService := report.NewService(report.NewPostgresRepository(db), cfg.LowStockThreshold)
	reportHandler := report.NewHandler(reportService, userService)

	productHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		// catalog browsing stays public
		Filter: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodGet && strings.HasPrefix(c.Path(), "/api/v1/products")
		},
	}))

	cartHandler.RegisterProtectedRoutes(app)
	checkoutHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	reportHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func bootstrapSchema(db *sql.DB) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC NOT NULL DEFAULT 0 CHECK (price >= 0),
            stock_quantity INT NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
            units_sold INT NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            image_url TEXT,
            created_at TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS cart_items (
            user_id INT NOT NULL,
            product_id INT NOT NULL REFERENCES products(id),
            quantity INT NOT NULL CHECK (quantity >= 1),
            PRIMARY KEY (user_id, product_id)
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_number TEXT NOT NULL UNIQUE,
            user_id INT NOT NULL,
            total_price NUMERIC NOT NULL DEFAULT 0 CHECK (total_price >= 0),
            shipping_address TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            order_id INT NOT NULL REFERENCES orders(id),
            product_id INT NOT NULL,
            product_name TEXT NOT NULL,
            unit_price NUMERIC NOT NULL,
            quantity INT NOT NULL CHECK (quantity >= 1)
        )`,
		`CREATE TABLE IF NOT EXISTS profiles (
            user_id INT PRIMARY KEY,
            email TEXT,
            full_name TEXT,
            phone TEXT,
            profile_completed BOOLEAN NOT NULL DEFAULT FALSE,
            is_admin BOOLEAN NOT NULL DEFAULT FALSE
        )`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			panic(err)
		}
	}
}
