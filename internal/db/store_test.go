package db_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/db"
	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// seedTestDB creates a product table with a small catalog and returns
// the database file path.
func seedTestDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "products.sqlite")

	conn, err := sql.Open("sqlite3", path)
	require.NoError(t, err, "should open test database")
	defer conn.Close()

	_, err = conn.Exec(`CREATE TABLE product (
		product_link TEXT,
		title TEXT,
		brand TEXT,
		price INTEGER,
		discount REAL,
		avg_rating REAL,
		total_ratings INTEGER
	)`)
	require.NoError(t, err, "should create product table")

	rows := []models.Product{
		{ProductLink: "https://example.com/p1", Title: "Puma Runner", Brand: "Puma", Price: 2499, Discount: 0.35, AvgRating: 4.2, TotalRatings: 812},
		{ProductLink: "https://example.com/p2", Title: "PUMA Street Flex", Brand: "PUMA", Price: 2899, Discount: 0.4, AvgRating: 4.5, TotalRatings: 1530},
		{ProductLink: "https://example.com/p3", Title: "Nike Air Zoom", Brand: "Nike", Price: 5999, Discount: 0.2, AvgRating: 4.7, TotalRatings: 9241},
		{ProductLink: "https://example.com/p4", Title: "Adidas Ultraboost", Brand: "Adidas", Price: 7499, Discount: 0.15, AvgRating: 4.6, TotalRatings: 4410},
	}
	for _, p := range rows {
		_, err = conn.Exec(
			`INSERT INTO product VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ProductLink, p.Title, p.Brand, p.Price, p.Discount, p.AvgRating, p.TotalRatings,
		)
		require.NoError(t, err, "should insert product row")
	}

	return path
}

func TestProductStoreQuery(t *testing.T) {
	ctx := context.Background()
	store := db.NewProductStore(seedTestDB(t))

	t.Run("brand filter round trip", func(t *testing.T) {
		products, err := store.Query(ctx, "SELECT * FROM product WHERE LOWER(brand) LIKE LOWER('%puma%') LIMIT 3")
		require.NoError(t, err)
		require.Len(t, products, 2, "both Puma rows should match case-insensitively")

		first := products[0]
		assert.Equal(t, "https://example.com/p1", first.ProductLink)
		assert.Equal(t, "Puma Runner", first.Title)
		assert.Equal(t, "Puma", first.Brand)
		assert.Equal(t, int64(2499), first.Price)
		assert.Equal(t, 0.35, first.Discount)
		assert.Equal(t, 4.2, first.AvgRating)
		assert.Equal(t, int64(812), first.TotalRatings)

		assert.Equal(t, "PUMA Street Flex", products[1].Title)
	})

	t.Run("ranking with limit", func(t *testing.T) {
		products, err := store.Query(ctx, "SELECT * FROM product ORDER BY avg_rating DESC LIMIT 2")
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Nike Air Zoom", products[0].Title)
		assert.Equal(t, "Adidas Ultraboost", products[1].Title)
	})

	t.Run("empty result", func(t *testing.T) {
		products, err := store.Query(ctx, "SELECT * FROM product WHERE price > 100000")
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := store.Query(ctx, "SELEC * FORM product")
		assert.Error(t, err, "malformed SQL should propagate as an error")
	})

	t.Run("missing table", func(t *testing.T) {
		_, err := store.Query(ctx, "SELECT * FROM warehouse")
		assert.Error(t, err)
	})
}

func TestProductStoreMissingFile(t *testing.T) {
	// sqlite creates missing files on open, so the failure surfaces as
	// a missing table at query time rather than at open.
	store := db.NewProductStore(filepath.Join(t.TempDir(), "absent.sqlite"))
	_, err := store.Query(context.Background(), "SELECT * FROM product")
	assert.Error(t, err)
}
