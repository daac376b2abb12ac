package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

const faqSystemPrompt = "You are a helpful e-commerce customer service assistant."

const faqAnswerTemplate = `You are a helpful e-commerce customer service assistant.
Answer the question based ONLY on the provided context.

CONTEXT:
%s

QUESTION:
%s

INSTRUCTIONS:
- Answer directly and concisely based on the context
- If the exact answer isn't in the context but related information is, provide that
- If no relevant information is found, say:
  "I don't have that specific information, but you can contact our support team for help."
- Be friendly and professional
- Keep answers brief (3-4 sentences)`

// FAQ answers customer service questions from the ingested FAQ corpus:
// retrieve the nearest records, fold their answers into a context block,
// and ask the model to answer strictly from that context.
type FAQ struct {
	model     Generator
	retriever Retriever
	topK      int
	logger    *slog.Logger
}

// NewFAQ creates the FAQ chain. topK values below 1 fall back to 3.
func NewFAQ(model Generator, retriever Retriever, topK int, logger *slog.Logger) *FAQ {
	if topK < 1 {
		topK = 3
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FAQ{
		model:     model,
		retriever: retriever,
		topK:      topK,
		logger:    logger,
	}
}

// Answer runs retrieval and answer generation for one query. Failures
// map to fixed messages: retrieval problems to the trouble message,
// model problems to the apology. When retrieval finds nothing the fixed
// no-match message is returned without calling the model.
func (f *FAQ) Answer(ctx context.Context, query string) string {
	log := f.logger.With("chain", "faq", "request_id", uuid.NewString())

	reply, err := f.run(ctx, query, log)
	if err != nil {
		log.Error("chain failed", "error", err)
		if errors.Is(err, ErrRetrieval) {
			return MsgFAQTrouble
		}
		return MsgFAQApology
	}
	return reply
}

func (f *FAQ) run(ctx context.Context, query string, log *slog.Logger) (string, error) {
	results, err := f.retriever.Query(ctx, query, f.topK)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRetrieval, err)
	}

	answers := make([]string, 0, len(results))
	for _, r := range results {
		if r.Record.Answer != "" {
			answers = append(answers, r.Record.Answer)
		}
	}
	contextBlock := strings.Join(answers, " ")

	if strings.TrimSpace(contextBlock) == "" {
		log.Debug("no faq context found", "query", query)
		return MsgFAQNoMatch, nil
	}

	userPrompt := fmt.Sprintf(faqAnswerTemplate, contextBlock, query)
	reply, err := f.model.GenerateWithSystem(ctx, faqSystemPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	return reply, nil
}
