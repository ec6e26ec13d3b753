package postgres

import (
	"context"
	"fmt"
)

// schema es idempotente: se ejecuta en cada arranque.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(120) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		CONSTRAINT categories_name_key UNIQUE (name)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(200) NOT NULL,
		sku         VARCHAR(64) NOT NULL,
		price       NUMERIC NOT NULL CHECK (price > 0),
		category_id BIGINT NOT NULL REFERENCES categories(id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT products_sku_key UNIQUE (sku)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		id         BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		stock      INTEGER NOT NULL CHECK (stock >= 0),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT inventory_product_id_key UNIQUE (product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_operations (
		id             BIGSERIAL PRIMARY KEY,
		product_id     BIGINT NOT NULL REFERENCES products(id),
		operation      VARCHAR(10) NOT NULL CHECK (operation IN ('add', 'remove')),
		quantity       INTEGER NOT NULL CHECK (quantity > 0),
		operation_date TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_operations_date ON inventory_operations(operation_date)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id         BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id),
		unit_price NUMERIC NOT NULL CHECK (unit_price > 0),
		quantity   INTEGER NOT NULL CHECK (quantity > 0),
		sale_time  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_sale_time ON sales(sale_time)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales(product_id)`,
}

// Migrate crea las tablas e índices que falten.
func Migrate(ctx context.Context, q Querier) error {
	for i, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración %d: %w", i+1, err)
		}
	}
	return nil
}
