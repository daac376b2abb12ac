// Package main provides the entry point for the shopassist CLI.
package main

import (
	"fmt"
	"os"

	"github.com/NISHU8875/ShopAssist-AI-RAG-Chatbot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
