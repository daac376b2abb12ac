// Package cli provides the command-line interface for shopassist.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/config"
	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/llm"
	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/vectorstore"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config
	cfg config.Config

	// Log file cleanup, set by PersistentPreRunE
	logCleanup func() error

	// Lazy-initialized LLM components
	model    *llm.Model
	embedder *llm.Embedder
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "shopassist",
	Short: "E-commerce shopping assistant",
	Long: `Shopassist is an e-commerce assistant with three chains: casual
chitchat, FAQ answering over an ingested knowledge base, and natural
language product search backed by the product catalog.

Each command runs one chain end to end and prints the answer.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// .env is optional; real environments set variables directly.
		_ = godotenv.Load()

		cfg = config.Load()
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}

		logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		slog.SetDefault(logger)
		logCleanup = cleanup

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

// getModel lazily constructs the chat model.
func getModel() (*llm.Model, error) {
	if model == nil {
		var err error
		model, err = llm.NewModel(cfg)
		if err != nil {
			return nil, fmt.Errorf("init model: %w", err)
		}
	}
	return model, nil
}

// getFAQStore lazily constructs the embedder and opens the vector store.
func getFAQStore() (*vectorstore.Store, error) {
	if embedder == nil {
		var err error
		embedder, err = llm.NewEmbedder(cfg)
		if err != nil {
			return nil, fmt.Errorf("init embedder: %w", err)
		}
	}
	store, err := vectorstore.NewStore(cfg.VectorDir, "faqs", embedder.Embed)
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}
	return store, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(faqCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(ingestCmd)
}
