// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/knowledge-manager/pkg/types"
)

// ExportYAML writes every indexed document, id-sorted, to
// .knowledge/export.yaml and returns the path written.
func (s *Store) ExportYAML() (string, error) {
	data, err := yaml.Marshal(s.sortedDocuments())
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.outputDir, knowledgeDirName, "export.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// ExportJSON writes every indexed document, id-sorted, to
// .knowledge/export.json and returns the path written.
func (s *Store) ExportJSON() (string, error) {
	data, err := json.MarshalIndent(s.sortedDocuments(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.outputDir, knowledgeDirName, "export.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

func (s *Store) sortedDocuments() []*types.Document {
	docs := make([]*types.Document, 0, len(s.index))
	for _, doc := range s.index {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs
}
