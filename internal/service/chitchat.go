package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const chitchatSystemPrompt = `You are a friendly and helpful e-commerce shopping assistant. You can:

1. Have casual conversations and greet users warmly
2. Provide fashion advice and styling suggestions
3. Offer wellness and lifestyle tips
4. Share general information like date and time
5. Help users feel comfortable and engaged

Guidelines:
- Be warm, friendly, and conversational
- Keep responses concise (2-4 sentences)
- For fashion advice, consider occasions, seasons, and personal style
- For wellness, give general healthy lifestyle tips
- Always maintain a helpful shopping assistant persona
- If asked about specific products, gently remind users they can ask about product searches

Remember: You're part of an e-commerce platform, so stay relevant to shopping and lifestyle when possible.`

// Chitchat is the stateless single-turn conversation chain. The persona
// prompt gets the current date and time appended at call time so the
// model can answer "what day is it" style questions.
type Chitchat struct {
	model  Generator
	now    func() time.Time
	logger *slog.Logger
}

// NewChitchat creates the chitchat chain.
func NewChitchat(model Generator, logger *slog.Logger) *Chitchat {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chitchat{
		model:  model,
		now:    time.Now,
		logger: logger,
	}
}

// Answer sends the persona prompt plus the user message to the model and
// returns the response verbatim. Model failures map to the fixed apology.
func (c *Chitchat) Answer(ctx context.Context, query string) string {
	log := c.logger.With("chain", "chitchat", "request_id", uuid.NewString())

	now := c.now()
	systemPrompt := chitchatSystemPrompt + fmt.Sprintf(
		"\n\nCurrent date and time: %s, %s",
		now.Format("Monday, January 02, 2006"),
		now.Format("03:04 PM"),
	)

	reply, err := c.model.GenerateWithSystem(ctx, systemPrompt, query)
	if err != nil {
		log.Error("chain failed", "error", fmt.Errorf("%w: %v", ErrService, err))
		return MsgChitchatApology
	}
	return reply
}
