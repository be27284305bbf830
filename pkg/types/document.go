// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocumentMetadata carries provenance for a stored document. All fields are
// optional; Extra holds keys with no dedicated field so that records written
// by newer tools round-trip without loss.
type DocumentMetadata struct {
	// Query is the research query that produced the document.
	Query string `json:"query,omitempty" yaml:"query,omitempty"`

	// Model is the producing model's identifier, as reported by the agent.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Timestamp is the producer-reported time of the research run. Stored
	// verbatim; the store does not parse or normalize it.
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Source is the originating source tag, also an input to the document id.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// OutputDir is the absolute path of the directory the research output
	// was written under.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Extra holds any additional metadata keys.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// Document is the unit of storage in the knowledge base.
type Document struct {
	// ID is content-addressed: a deterministic function of the source tag
	// and a bounded content prefix. Re-ingesting the same (source, prefix)
	// overwrites the prior document.
	ID string `json:"id" yaml:"id"`

	// Title is the display string, e.g. "Research: <query>".
	Title string `json:"title" yaml:"title"`

	// Content is the full text body, one "## <heading>" section per finding.
	Content string `json:"content" yaml:"content"`

	// Metadata carries provenance.
	Metadata DocumentMetadata `json:"metadata" yaml:"metadata"`

	// Embeddings is reserved for a future vector representation. Always
	// empty today; it must survive persistence round-trips unchanged.
	Embeddings []float64 `json:"embeddings" yaml:"embeddings"`
}

// QueryResult is one ranked match from a knowledge base search. Results are
// ephemeral; only documents are persisted.
type QueryResult struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Source  string `json:"source" yaml:"source"`

	// RelevanceScore is the fraction of query terms present in the document
	// content, in [0, 1]. Returned results always score above zero.
	RelevanceScore float64 `json:"relevance_score" yaml:"relevance_score"`
}
