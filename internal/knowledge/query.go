// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"sort"
	"strings"

	"github.com/pdiddy/knowledge-manager/pkg/types"
)

// Search scores every indexed document against text and returns up to limit
// results, best first. The score is the fraction of unique query terms that
// also appear in the document content; documents sharing no terms with the
// query are excluded outright, so every returned score is positive.
//
// Ties break on document id ascending, making rankings reproducible. A query
// with no terms matches nothing, and limit <= 0 returns nothing.
func (s *Store) Search(text string, limit int) []types.QueryResult {
	if limit <= 0 {
		return nil
	}
	queryTerms := tokenize(text)
	if len(queryTerms) == 0 {
		return nil
	}

	var results []types.QueryResult
	for id, doc := range s.index {
		contentTerms := tokenize(doc.Content)
		matches := 0
		for term := range queryTerms {
			if contentTerms[term] {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		title := doc.Title
		if title == "" {
			title = "Untitled"
		}
		source := doc.Metadata.Source
		if source == "" {
			source = "unknown"
		}

		results = append(results, types.QueryResult{
			ID:             id,
			Title:          title,
			Content:        doc.Content,
			Source:         source,
			RelevanceScore: float64(matches) / float64(len(queryTerms)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].RelevanceScore != results[j].RelevanceScore {
			return results[i].RelevanceScore > results[j].RelevanceScore
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// tokenize lowercases text and splits it on whitespace into a set of unique
// terms.
func tokenize(text string) map[string]bool {
	terms := make(map[string]bool)
	for _, field := range strings.Fields(strings.ToLower(text)) {
		terms[field] = true
	}
	return terms
}
