// Package db provides read access to the SQLite product catalog.
package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// ProductStore executes read queries against a file-backed SQLite
// database. Each query opens its own connection and closes it before
// returning, success or failure; the store itself holds no handles.
type ProductStore struct {
	path string
}

// NewProductStore creates a store for the database file at path.
func NewProductStore(path string) *ProductStore {
	return &ProductStore{path: path}
}

// Path returns the database file path.
func (s *ProductStore) Path() string {
	return s.path
}

// Query executes stmt and scans the result into product rows.
// stmt must have passed the safety filter; this method does not
// re-validate it. The statement is expected to select all seven
// product columns (SELECT *), which the generation prompt enforces.
func (s *ProductStore) Query(ctx context.Context, stmt string) ([]models.Product, error) {
	conn, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ProductLink,
			&p.Title,
			&p.Brand,
			&p.Price,
			&p.Discount,
			&p.AvgRating,
			&p.TotalRatings,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return products, nil
}
