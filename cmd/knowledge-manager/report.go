package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/knowledge-manager/internal/knowledge"
)

var reportCmd = &cobra.Command{
	Use:   "report [topic]",
	Short: "Generate a Markdown report from the knowledge base",
	Long: `Report surveys the top-ranked documents for a topic and writes a Markdown
report with a summary line and one numbered section per document. When
nothing in the knowledge base matches, no file is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	content, err := store.Report(args[0])
	if errors.Is(err, knowledge.ErrNoResults) {
		fmt.Println("No relevant information found to generate a report.")
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("Report generated successfully at: %s\n", output)
	return nil
}

func init() {
	reportCmd.Flags().String("output", "report.md", "output file for the report")

	rootCmd.AddCommand(reportCmd)
}
