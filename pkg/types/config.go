package types

// StoreConfig holds settings for the knowledge store.
type StoreConfig struct {
	// OutputDir is the research output directory. Documents persist beneath
	// it under .knowledge/ (default "research_output").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
