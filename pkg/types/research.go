// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Finding is one labeled section of a research result. The agent emits
// findings in presentation order; the store preserves that order when
// assembling document content.
type Finding struct {
	// Title is the section heading. Empty titles render as "Untitled".
	Title string `json:"title" yaml:"title"`

	// Content is the section body.
	Content string `json:"content" yaml:"content"`
}

// ResearchResult is the structured output of a research agent run. The agent
// itself is external to this tool; results arrive as YAML or JSON files.
type ResearchResult struct {
	// Model identifies the model that produced the findings.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Timestamp is the producer-reported run time, kept as an opaque string.
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Findings are the labeled result sections, in order.
	Findings []Finding `json:"findings" yaml:"findings"`
}
