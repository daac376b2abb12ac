// Package sqlgen handles model-generated SQL: prompt templates, statement
// extraction from tagged output, and a denylist safety check.
package sqlgen

import (
	"regexp"
	"strings"
)

// GenerationPrompt instructs the model to emit exactly one SQLite
// statement for the product table, wrapped in <SQL></SQL> tags.
const GenerationPrompt = `You are an expert SQL assistant.

You are given a SQLite database schema and a natural language question.
Generate ONE valid SQLite SQL query.

<schema>
table: product

columns:
- product_link (TEXT)
- title (TEXT)
- brand (TEXT)
- price (INTEGER)
- discount (REAL)
- avg_rating (REAL)
- total_ratings (INTEGER)
</schema>

RULES:
- Always use SELECT *
- Brand search must be case-insensitive using LOWER(brand) LIKE LOWER('%value%')
- Never use ILIKE
- Use ORDER BY and LIMIT when the question implies ranking or top results
- Never generate destructive SQL (DROP, DELETE, UPDATE, INSERT, ALTER)
- Output ONLY the SQL inside <SQL></SQL> tags`

// NarrationPrompt instructs the model to describe query results using
// only the supplied data.
const NarrationPrompt = `You are an expert in converting structured product data into natural language.

You will receive:
- QUESTION
- DATA (list of products)

RULES:
- Use ONLY the provided data
- Do not mention databases, tables, or queries
- Format each product on a new line as:

1. Product title: Rs. price (discount% off), Rating: rating <product_link>

- If no products exist, say:
"No products match your request."`

// unsafeKeywords rejects any statement that could mutate the store.
var unsafeKeywords = []string{"DROP", "DELETE", "UPDATE", "INSERT", "ALTER"}

var sqlTagPattern = regexp.MustCompile(`(?is)<SQL>\s*(.*?)\s*</SQL>`)

// Extract returns the first SQL block enclosed in <SQL></SQL> tags.
// Matching is case-insensitive and spans newlines. The second return
// value is false when no tagged block is present.
func Extract(text string) (string, bool) {
	match := sqlTagPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// IsSafe reports whether the statement is free of denylisted keywords.
// The check is a deliberately coarse case-insensitive substring match:
// a denylisted word inside a string literal or identifier also rejects
// the statement. False positives are acceptable, false negatives are not.
func IsSafe(stmt string) bool {
	upper := strings.ToUpper(stmt)
	for _, keyword := range unsafeKeywords {
		if strings.Contains(upper, keyword) {
			return false
		}
	}
	return true
}
