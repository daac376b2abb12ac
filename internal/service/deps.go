package service

import (
	"context"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/models"
	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/vectorstore"
)

// Generator produces text from a system prompt and a user message.
// Satisfied by llm.Model.
type Generator interface {
	GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Retriever returns the FAQ records nearest to a query.
// Satisfied by vectorstore.Store.
type Retriever interface {
	Query(ctx context.Context, text string, k int) ([]vectorstore.Result, error)
}

// Executor runs a validated read statement against the product catalog.
// Satisfied by db.ProductStore.
type Executor interface {
	Query(ctx context.Context, stmt string) ([]models.Product, error)
}
