// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge persists research documents and retrieves them by
// keyword relevance. The store is a deliberate placeholder for a vector
// search backend: documents live as content-addressed JSON files under
// <output_dir>/.knowledge/ plus a process-lifetime in-memory index, and
// the Embeddings slot stays empty until a real backend exists.
package knowledge

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/knowledge-manager/pkg/types"
)

const (
	knowledgeDirName = ".knowledge"
	ledgerFile       = "ledger.db"

	// sourceTag labels documents ingested from the research agent and is
	// one of the two inputs to the document id.
	sourceTag = "research-agent"

	// idPrefixLen bounds how much content feeds the document id. Two
	// documents sharing a source and this prefix collide on purpose: the
	// store deduplicates by prefix with last-write-wins semantics.
	idPrefixLen = 1000
)

// Store owns the knowledge base for one research output directory. The
// in-memory index is rebuilt only by Ingest; documents persisted by earlier
// processes are not loaded at construction. A Store is not safe for
// concurrent use; callers needing that must serialize externally.
type Store struct {
	outputDir string
	index     map[string]*types.Document
	ledger    *Ledger
}

// NewStore creates the .knowledge directory under cfg.OutputDir if needed
// and opens the ingest ledger. The index starts empty regardless of what is
// already on disk.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "research_output"
	}

	dir := filepath.Join(outputDir, knowledgeDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating knowledge directory: %w", err)
	}

	ledger, err := OpenLedger(filepath.Join(dir, ledgerFile))
	if err != nil {
		return nil, fmt.Errorf("opening ingest ledger: %w", err)
	}

	return &Store{
		outputDir: outputDir,
		index:     make(map[string]*types.Document),
		ledger:    ledger,
	}, nil
}

// Close releases the ledger database connection.
func (s *Store) Close() error {
	return s.ledger.Close()
}

// DocumentID derives a stable identifier from a source tag and the first
// idPrefixLen code points of content. Equal inputs always hash to equal
// ids, across processes and platforms.
func DocumentID(content, source string) string {
	sum := sha256.Sum256([]byte(source + ":" + contentPrefix(content, idPrefixLen)))
	return hex.EncodeToString(sum[:])
}

// contentPrefix returns the first n code points of s.
func contentPrefix(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// Ingest assembles a research result into a Document, indexes it in memory,
// persists it to .knowledge/<id>.json, and appends an entry to the ingest
// ledger. The id depends on (source tag, query), so re-running the same
// query overwrites the prior document rather than duplicating it.
//
// A result with no findings sequence is a data-shape error; nothing is
// stored. The memory and disk writes are not transactional: a crash between
// them leaves the two views inconsistent, which is accepted for this
// placeholder backend.
func (s *Store) Ingest(ctx context.Context, query string, result types.ResearchResult) (*types.Document, error) {
	if result.Findings == nil {
		return nil, fmt.Errorf("research result has no findings sequence")
	}

	absDir, err := filepath.Abs(s.outputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}

	doc := &types.Document{
		ID:      DocumentID(query, sourceTag),
		Title:   "Research: " + query,
		Content: assembleContent(result.Findings),
		Metadata: types.DocumentMetadata{
			Query:     query,
			Model:     result.Model,
			Timestamp: result.Timestamp,
			Source:    sourceTag,
			OutputDir: absDir,
		},
		Embeddings: []float64{},
	}

	s.index[doc.ID] = doc

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	path := s.documentPath(doc.ID)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	if err := s.ledger.Record(ctx, doc, path); err != nil {
		return nil, fmt.Errorf("recording ingest: %w", err)
	}

	return doc, nil
}

// assembleContent renders findings as "## <title>" sections joined by blank
// lines, preserving the producer's order. Missing titles become "Untitled".
func assembleContent(findings []types.Finding) string {
	sections := make([]string, len(findings))
	for i, f := range findings {
		title := f.Title
		if title == "" {
			title = "Untitled"
		}
		sections[i] = "## " + title + "\n" + f.Content
	}
	return strings.Join(sections, "\n\n")
}

// Load reads a persisted document back from disk. It does not touch the
// in-memory index.
func (s *Store) Load(id string) (*types.Document, error) {
	data, err := os.ReadFile(s.documentPath(id))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", id, err)
	}
	return &doc, nil
}

// Len reports the number of indexed documents.
func (s *Store) Len() int {
	return len(s.index)
}

func (s *Store) documentPath(id string) string {
	return filepath.Join(s.outputDir, knowledgeDirName, id+".json")
}
