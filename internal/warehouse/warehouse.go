// Etsy Dashboard - Seller Analytics Frontend for Etsy Shops
// Copyright 2026 Brice601
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Brice601/etsydashboard-frontend

package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/Brice601/etsydashboard-frontend/internal/dataset"
)

// Warehouse is a per-analysis, in-memory DuckDB holding one upload's cleaned
// sales rows. Open it, Load the rows, run the rollup queries, Close it.
// Nothing touches disk.
type Warehouse struct {
	conn *sql.DB
}

const salesSchema = `
CREATE TABLE sales (
	sale_date    DATE NOT NULL,
	product      VARCHAR NOT NULL,
	price        DOUBLE NOT NULL,
	quantity     INTEGER NOT NULL,
	shipping     DOUBLE NOT NULL,
	cost         DOUBLE NOT NULL,
	country      VARCHAR,
	city         VARCHAR,
	buyer        VARCHAR,
	order_id     VARCHAR,
	date_paid    DATE,
	date_shipped DATE
)`

// Open creates an empty in-memory warehouse.
func Open(ctx context.Context) (*Warehouse, error) {
	conn, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open warehouse: %w", err)
	}

	if _, err := conn.ExecContext(ctx, salesSchema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create sales table: %w", err)
	}

	return &Warehouse{conn: conn}, nil
}

// Close releases the in-memory database.
func (w *Warehouse) Close() error {
	return w.conn.Close()
}

// Load inserts cleaned sales rows in one transaction.
func (w *Warehouse) Load(ctx context.Context, rows []dataset.SaleRow) error {
	tx, err := w.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sales VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		_, err := stmt.ExecContext(ctx,
			r.Date, r.Product, r.Price, r.Quantity, r.Shipping, r.Cost,
			nullString(r.Country), nullString(r.City), nullString(r.Buyer),
			nullString(r.OrderID), nullTime(r.DatePaid), nullTime(r.DateShipped))
		if err != nil {
			return fmt.Errorf("insert sale row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// queryAndScan runs a query and maps each row through scan.
func queryAndScan[T any](ctx context.Context, conn *sql.DB, query string, args []any, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, rows.Err()
}
