package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/models"
	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/sqlgen"
	"github.com/google/uuid"
)

// ProductSearch answers product questions by asking the model for a SQL
// statement, validating it, executing it against the catalog, and
// narrating the rows back in natural language.
type ProductSearch struct {
	model  Generator
	store  Executor
	logger *slog.Logger
}

// NewProductSearch creates the product search chain.
func NewProductSearch(model Generator, store Executor, logger *slog.Logger) *ProductSearch {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductSearch{
		model:  model,
		store:  store,
		logger: logger,
	}
}

// Answer runs the full chain for one question. Any stage failure is
// logged and converted to the fixed apology; no error detail reaches
// the caller. There are no retries and no partial results.
func (s *ProductSearch) Answer(ctx context.Context, question string) string {
	log := s.logger.With("chain", "product_search", "request_id", uuid.NewString())

	reply, err := s.run(ctx, question, log)
	if err != nil {
		log.Error("chain failed", "error", err)
		return MsgSearchApology
	}
	return reply
}

func (s *ProductSearch) run(ctx context.Context, question string, log *slog.Logger) (string, error) {
	stmt, err := s.generate(ctx, question, log)
	if err != nil {
		return "", err
	}

	products, err := s.store.Query(ctx, stmt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecution, err)
	}

	return s.narrate(ctx, question, products)
}

// generate asks the model for a statement and validates it. A statement
// that fails the safety filter never reaches the store.
func (s *ProductSearch) generate(ctx context.Context, question string, log *slog.Logger) (string, error) {
	response, err := s.model.GenerateWithSystem(ctx, sqlgen.GenerationPrompt, question)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}

	stmt, ok := sqlgen.Extract(response)
	if !ok {
		return "", ErrGeneration
	}

	if !sqlgen.IsSafe(stmt) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeSQL, stmt)
	}

	log.Debug("generated sql", "sql", stmt)
	return stmt, nil
}

// narrate turns rows into natural language. Empty results short-circuit
// to the fixed sentinel without a model round trip.
func (s *ProductSearch) narrate(ctx context.Context, question string, products []models.Product) (string, error) {
	if len(products) == 0 {
		return MsgNoProducts, nil
	}

	data, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("marshal products: %w", err)
	}

	userPrompt := fmt.Sprintf("QUESTION: %s\nDATA: %s", question, data)
	reply, err := s.model.GenerateWithSystem(ctx, sqlgen.NarrationPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	return reply, nil
}
