package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/models"
	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/vectorstore"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGenerator scripts model responses per call. Each call records the
// prompts it received.
type fakeGenerator struct {
	fn      func(systemPrompt, userPrompt string) (string, error)
	calls   int
	systems []string
	users   []string
}

func (g *fakeGenerator) GenerateWithSystem(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	g.calls++
	g.systems = append(g.systems, systemPrompt)
	g.users = append(g.users, userPrompt)
	if g.fn == nil {
		return "", errors.New("no response scripted")
	}
	return g.fn(systemPrompt, userPrompt)
}

// fakeExecutor records statements and returns canned rows.
type fakeExecutor struct {
	products []models.Product
	err      error
	calls    int
	lastStmt string
}

func (e *fakeExecutor) Query(_ context.Context, stmt string) ([]models.Product, error) {
	e.calls++
	e.lastStmt = stmt
	if e.err != nil {
		return nil, e.err
	}
	return e.products, nil
}

// fakeRetriever returns canned FAQ results.
type fakeRetriever struct {
	results []vectorstore.Result
	err     error
	calls   int
	lastK   int
}

func (r *fakeRetriever) Query(_ context.Context, _ string, k int) ([]vectorstore.Result, error) {
	r.calls++
	r.lastK = k
	if r.err != nil {
		return nil, r.err
	}
	return r.results, nil
}
