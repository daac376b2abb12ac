package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestFile string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest FAQ data into the vector store",
	Long: `Load question/answer pairs from a CSV file into the FAQ
collection. The operation is idempotent: if the collection already
exists nothing is ingested.

Examples:
  shopassist ingest
  shopassist ingest --file resources/faq_data.csv`,
	Args: cobra.NoArgs,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "FAQ CSV file (defaults to SHOPASSIST_FAQ_PATH)")
}

func runIngest(cmd *cobra.Command, args []string) error {
	store, err := getFAQStore()
	if err != nil {
		return err
	}

	path := ingestFile
	if path == "" {
		path = cfg.FAQPath
	}

	if err := store.Ingest(context.Background(), path); err != nil {
		return fmt.Errorf("ingest faq data: %w", err)
	}

	fmt.Printf("FAQ collection ready (%d records).\n", store.Count())
	return nil
}
