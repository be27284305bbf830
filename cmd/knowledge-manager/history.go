package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past ingests from the ledger",
	Long: `History lists entries from the ingest ledger, newest first. The ledger is
an audit trail kept alongside the document files; unlike the search index
it survives process restarts.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Ledger().History(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No ingests recorded.")
		return nil
	}

	for _, rec := range records {
		id := rec.DocumentID
		if len(id) > 12 {
			id = id[:12]
		}
		fmt.Printf("%s  %-12s  %s\n", rec.IngestedAt.Format(time.RFC3339), id, rec.Query)
	}
	fmt.Printf("\n%d entries\n", len(records))
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}
