package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/models"
)

var pumaRows = []models.Product{
	{ProductLink: "https://example.com/p1", Title: "Puma Runner", Brand: "Puma", Price: 2499, Discount: 0.35, AvgRating: 4.2, TotalRatings: 812},
	{ProductLink: "https://example.com/p2", Title: "PUMA Street Flex", Brand: "PUMA", Price: 2899, Discount: 0.4, AvgRating: 4.5, TotalRatings: 1530},
}

// isGenerationCall distinguishes the SQL generation round trip from the
// narration round trip by the system prompt.
func isGenerationCall(systemPrompt string) bool {
	return strings.Contains(systemPrompt, "expert SQL assistant")
}

func TestProductSearchHappyPath(t *testing.T) {
	const narration = "1. Puma Runner: Rs. 2499 (35% off), Rating: 4.2 <https://example.com/p1>"

	gen := &fakeGenerator{fn: func(systemPrompt, _ string) (string, error) {
		if isGenerationCall(systemPrompt) {
			return "<SQL>SELECT * FROM product WHERE LOWER(brand) LIKE LOWER('%puma%') LIMIT 3</SQL>", nil
		}
		return narration, nil
	}}
	store := &fakeExecutor{products: pumaRows}

	search := NewProductSearch(gen, store, discardLogger())
	got := search.Answer(context.Background(), "Show Puma shoes under 3000")

	if got != narration {
		t.Errorf("Answer = %q, want narration text", got)
	}
	if store.calls != 1 {
		t.Errorf("executor called %d times, want 1", store.calls)
	}
	if store.lastStmt != "SELECT * FROM product WHERE LOWER(brand) LIKE LOWER('%puma%') LIMIT 3" {
		t.Errorf("executor got statement %q", store.lastStmt)
	}
	if gen.calls != 2 {
		t.Errorf("model called %d times, want 2", gen.calls)
	}
	// Narration must carry both the question and the row data.
	narrationPrompt := gen.users[1]
	for _, want := range []string{"Show Puma shoes under 3000", "Puma Runner", "https://example.com/p2", "\"price\":2499"} {
		if !strings.Contains(narrationPrompt, want) {
			t.Errorf("narration prompt missing %q:\n%s", want, narrationPrompt)
		}
	}
}

func TestProductSearchUnsafeSQL(t *testing.T) {
	gen := &fakeGenerator{fn: func(string, string) (string, error) {
		return "<SQL>DROP TABLE product</SQL>", nil
	}}
	store := &fakeExecutor{}

	search := NewProductSearch(gen, store, discardLogger())
	got := search.Answer(context.Background(), "wipe everything")

	if got != MsgSearchApology {
		t.Errorf("Answer = %q, want apology", got)
	}
	if store.calls != 0 {
		t.Errorf("store must never be invoked for unsafe SQL, got %d calls", store.calls)
	}
}

func TestProductSearchNoTaggedSQL(t *testing.T) {
	gen := &fakeGenerator{fn: func(string, string) (string, error) {
		return "I cannot answer that.", nil
	}}
	store := &fakeExecutor{}

	search := NewProductSearch(gen, store, discardLogger())
	if got := search.Answer(context.Background(), "hello"); got != MsgSearchApology {
		t.Errorf("Answer = %q, want apology", got)
	}
	if store.calls != 0 {
		t.Errorf("store should not be invoked without a statement")
	}
}

func TestProductSearchEmptyResults(t *testing.T) {
	gen := &fakeGenerator{fn: func(systemPrompt, _ string) (string, error) {
		if isGenerationCall(systemPrompt) {
			return "<SQL>SELECT * FROM product WHERE price > 100000</SQL>", nil
		}
		t.Error("narration must not run for empty results")
		return "", nil
	}}
	store := &fakeExecutor{products: nil}

	search := NewProductSearch(gen, store, discardLogger())
	if got := search.Answer(context.Background(), "luxury watches"); got != MsgNoProducts {
		t.Errorf("Answer = %q, want %q", got, MsgNoProducts)
	}
	if gen.calls != 1 {
		t.Errorf("model called %d times, want 1 (generation only)", gen.calls)
	}
}

func TestProductSearchStageFailures(t *testing.T) {
	tests := []struct {
		name  string
		gen   *fakeGenerator
		store *fakeExecutor
	}{
		{
			"model unreachable",
			&fakeGenerator{fn: func(string, string) (string, error) {
				return "", errors.New("connection refused")
			}},
			&fakeExecutor{},
		},
		{
			"execution fails",
			&fakeGenerator{fn: func(string, string) (string, error) {
				return "<SQL>SELECT * FROM produt</SQL>", nil
			}},
			&fakeExecutor{err: errors.New("no such table: produt")},
		},
		{
			"narration fails",
			&fakeGenerator{fn: func(systemPrompt, _ string) (string, error) {
				if isGenerationCall(systemPrompt) {
					return "<SQL>SELECT * FROM product</SQL>", nil
				}
				return "", errors.New("rate limit exceeded")
			}},
			&fakeExecutor{products: pumaRows},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := NewProductSearch(tt.gen, tt.store, discardLogger())
			got := search.Answer(context.Background(), "anything")
			if got != MsgSearchApology {
				t.Errorf("Answer = %q, want the fixed apology only", got)
			}
		})
	}
}
