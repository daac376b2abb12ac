// Package models defines the domain types shared across the assistant chains.
package models

// Product represents one row of the read-only product table.
// Column names match the SQLite schema exactly so that rows survive
// JSON serialization into the narration prompt unchanged.
type Product struct {
	ProductLink  string  `json:"product_link"`
	Title        string  `json:"title"`
	Brand        string  `json:"brand"`
	Price        int64   `json:"price"`
	Discount     float64 `json:"discount"`
	AvgRating    float64 `json:"avg_rating"`
	TotalRatings int64   `json:"total_ratings"`
}
