// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/knowledge-manager/pkg/types"
)

// ReadResultFile loads a research agent result from a YAML or JSON file.
// The file must carry a findings sequence; a result without one is
// malformed and rejected before any ingest side effect.
func ReadResultFile(path string) (*types.ResearchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}

	var result types.ResearchResult
	if err := yaml.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parsing result file %s: %w", path, err)
	}
	if result.Findings == nil {
		return nil, fmt.Errorf("result file %s has no findings sequence", path)
	}
	return &result, nil
}
