package config

import (
	"os"
	"strconv"
)

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	CORSOrigins string

	// LowStockThreshold is the stock level at or below which an active
	// product counts as low stock in admin reporting.
	LowStockThreshold int
}

func Load() Config {
	addr := os.Getenv("SHOP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	threshold := 5
	if raw := os.Getenv("LOW_STOCK_THRESHOLD"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			threshold = n
		}
	}

	return Config{
		Addr:              addr,
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		CORSOrigins:       origins,
		LowStockThreshold: threshold,
	}
}
