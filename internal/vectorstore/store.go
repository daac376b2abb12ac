// Package vectorstore persists FAQ records in an embedded vector index
// and answers nearest-neighbor queries over them.
package vectorstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/models"
	"github.com/philippgille/chromem-go"
)

// Store wraps a persistent chromem database holding one FAQ collection.
// The question text is indexed; the answer travels in metadata.
type Store struct {
	db         *chromem.DB
	embedFunc  chromem.EmbeddingFunc
	collection string
}

// Result is a retrieved FAQ record with its similarity to the query.
type Result struct {
	Record     models.FAQRecord
	Similarity float32
}

// NewStore opens or creates the vector database under dir.
func NewStore(dir, collection string, embedFunc chromem.EmbeddingFunc) (*Store, error) {
	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("open vector db: %w", err)
	}

	return &Store{
		db:         db,
		embedFunc:  embedFunc,
		collection: collection,
	}, nil
}

// Ingest loads question/answer pairs from a CSV file into the FAQ
// collection. It is idempotent: when the collection already exists the
// call returns immediately without touching the file. Ingestion is not
// guarded against concurrent queries; run it before serving traffic.
func (s *Store) Ingest(ctx context.Context, csvPath string) error {
	if s.db.GetCollection(s.collection, s.embedFunc) != nil {
		slog.Debug("faq collection already exists, skipping ingestion", "collection", s.collection)
		return nil
	}

	records, err := readFAQCSV(csvPath)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no faq records in %s", csvPath)
	}

	col, err := s.db.CreateCollection(s.collection, nil, s.embedFunc)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}

	docs := make([]chromem.Document, 0, len(records))
	for i, rec := range records {
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("faq_%d", i),
			Content:  rec.Question,
			Metadata: map[string]string{"answer": rec.Answer},
		})
	}

	if err := col.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}

	slog.Info("faq data ingested", "collection", s.collection, "count", len(docs))
	return nil
}

// Query returns up to k FAQ records nearest to text. A missing
// collection is an error; an empty one yields no results.
func (s *Store) Query(ctx context.Context, text string, k int) ([]Result, error) {
	col := s.db.GetCollection(s.collection, s.embedFunc)
	if col == nil {
		return nil, fmt.Errorf("collection %q not found, run ingestion first", s.collection)
	}

	count := col.Count()
	if count == 0 {
		return nil, nil
	}
	if k > count {
		k = count
	}

	docs, err := col.Query(ctx, text, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query vectors: %w", err)
	}

	results := make([]Result, 0, len(docs))
	for _, d := range docs {
		results = append(results, Result{
			Record: models.FAQRecord{
				Question: d.Content,
				Answer:   d.Metadata["answer"],
			},
			Similarity: d.Similarity,
		})
	}
	return results, nil
}

// Count returns the number of records in the FAQ collection.
func (s *Store) Count() int {
	col := s.db.GetCollection(s.collection, s.embedFunc)
	if col == nil {
		return 0
	}
	return col.Count()
}

// readFAQCSV parses a CSV with a question,answer header.
func readFAQCSV(path string) ([]models.FAQRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open faq csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	questionIdx, answerIdx := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "question":
			questionIdx = i
		case "answer":
			answerIdx = i
		}
	}
	if questionIdx < 0 || answerIdx < 0 {
		return nil, fmt.Errorf("csv %s missing question/answer columns", path)
	}

	var records []models.FAQRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		if len(row) <= questionIdx || len(row) <= answerIdx {
			continue
		}
		records = append(records, models.FAQRecord{
			Question: strings.TrimSpace(row[questionIdx]),
			Answer:   strings.TrimSpace(row[answerIdx]),
		})
	}

	return records, nil
}
