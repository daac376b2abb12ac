package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/db"
	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/service"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <question>",
	Short: "Search the product catalog in natural language",
	Long: `Translate a natural language question into SQL, run it against
the product catalog, and narrate the matching products.

Examples:
  shopassist search "Show top 3 shoes in descending order of rating"
  shopassist search "Show Puma shoes under 3000"
  shopassist search "List products with discount above 40%"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	m, err := getModel()
	if err != nil {
		return err
	}

	store := db.NewProductStore(cfg.SQLitePath)
	chain := service.NewProductSearch(m, store, slog.Default())
	fmt.Println(chain.Answer(context.Background(), args[0]))
	return nil
}
