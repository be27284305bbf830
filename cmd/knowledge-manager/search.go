package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/knowledge-manager/pkg/types"
)

// defaultSearchLimit caps interactive search results. Reports use a wider
// internal cap.
const defaultSearchLimit = 5

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the knowledge base by keyword relevance",
	Long: `Search ranks stored documents by keyword overlap with the query: the score
is the fraction of query terms found in a document's content. Documents
sharing no terms with the query are excluded.

The index covers documents ingested in this process; search only sees what
ingest stored first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	if !cmd.Flags().Changed("limit") && viper.IsSet("search.max_results") {
		limit = viper.GetInt("search.max_results")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	results := store.Search(args[0], limit)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []types.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Println("Search Results:")
	for i, r := range results {
		fmt.Printf("\n%d. %s (score %.2f)\n", i+1, r.Title, r.RelevanceScore)
		content := r.Content
		if len(content) > 200 {
			content = content[:200] + "..."
		}
		fmt.Printf("   %s\n", content)
		fmt.Printf("   Source: %s\n", r.Source)
	}
	fmt.Printf("\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().Int("limit", defaultSearchLimit, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
