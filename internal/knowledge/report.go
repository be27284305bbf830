// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoResults signals that no stored document matched a report topic.
// Callers print a user-facing message instead of writing an empty report.
var ErrNoResults = errors.New("no relevant documents in the knowledge base")

const (
	// reportResultLimit is how many documents a report surveys. It is wider
	// than the interactive search default so reports draw on more evidence.
	reportResultLimit = 10

	// reportSnippetLen bounds each section's content, in code points.
	reportSnippetLen = 1000
)

// Report renders a Markdown report on topic from the top-ranked documents.
// Returns ErrNoResults when nothing in the store matches.
func (s *Store) Report(topic string) (string, error) {
	results := s.Search(topic, reportResultLimit)
	if len(results) == 0 {
		return "", ErrNoResults
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Research Report: %s\n\n", topic)
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "This report was generated based on %d relevant research items from the knowledge base.\n\n", len(results))

	for i, r := range results {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, r.Title)
		b.WriteString(truncate(r.Content, reportSnippetLen))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "*Source: %s*\n\n", r.Source)
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

// truncate cuts s to n code points, appending an ellipsis marker when
// anything was dropped.
func truncate(s string, n int) string {
	prefix := contentPrefix(s, n)
	if len(prefix) < len(s) {
		return prefix + "..."
	}
	return s
}
