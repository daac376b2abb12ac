package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/service"
	"github.com/spf13/cobra"
)

var faqCmd = &cobra.Command{
	Use:   "faq <question>",
	Short: "Answer a customer service question from the FAQ corpus",
	Long: `Answer a question using the ingested FAQ knowledge base.

Run 'shopassist ingest' once before the first query.

Examples:
  shopassist faq "What's your policy on defective products?"
  shopassist faq "Do you take cash as a payment option?"`,
	Args: cobra.ExactArgs(1),
	RunE: runFAQ,
}

func runFAQ(cmd *cobra.Command, args []string) error {
	m, err := getModel()
	if err != nil {
		return err
	}
	store, err := getFAQStore()
	if err != nil {
		return err
	}

	chain := service.NewFAQ(m, store, cfg.FAQTopK, slog.Default())
	fmt.Println(chain.Answer(context.Background(), args[0]))
	return nil
}
