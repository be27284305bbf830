package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/knowledge-manager/internal/knowledge"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [query]",
	Short: "Store a research agent result in the knowledge base",
	Long: `Ingest reads a structured research result file (YAML or JSON) produced by
an external research agent and stores it as a document keyed by the query.
Findings become "## <title>" sections of the document body, in order.

Re-ingesting the same query overwrites the prior document: the document id
is derived from the query and a fixed source tag, so the store deduplicates
rather than versioning.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	resultsFile, _ := cmd.Flags().GetString("results")
	if resultsFile == "" {
		return fmt.Errorf("a result file is required: provide --results")
	}

	result, err := knowledge.ReadResultFile(resultsFile)
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.Ingest(context.Background(), args[0], *result)
	if err != nil {
		return err
	}

	fmt.Printf("Stored research with ID: %s\n", doc.ID)
	return nil
}

func init() {
	ingestCmd.Flags().String("results", "", "path to the research result file (YAML or JSON)")

	rootCmd.AddCommand(ingestCmd)
}
