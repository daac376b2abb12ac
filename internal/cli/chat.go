package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/service"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Have a casual conversation with the assistant",
	Long: `Send a single chitchat message and print the reply.

Examples:
  shopassist chat "Hi, I'm Pankaj!"
  shopassist chat "What should I wear for a summer wedding?"`,
	Args: cobra.ExactArgs(1),
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	m, err := getModel()
	if err != nil {
		return err
	}

	chain := service.NewChitchat(m, slog.Default())
	fmt.Println(chain.Answer(context.Background(), args[0]))
	return nil
}
