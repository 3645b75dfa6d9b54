package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed default_config.json
var defaultConfig []byte

// configDoc mirrors the on-disk configuration document.
type configDoc struct {
	Modules   map[string]moduleConfig   `json:"modules"`
	Templates map[string]templateConfig `json:"presentation_templates"`
	Criteria  map[string]criteriaConfig `json:"assessment_criteria"`
}

type moduleConfig struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
	HandsOn     bool     `json:"hands_on"`
	Difficulty  string   `json:"difficulty"`
}

type templateConfig struct {
	Slides []string `json:"slides"`
}

type criteriaConfig struct {
	Understanding  int `json:"understanding"`
	Application    int `json:"application"`
	ProblemSolving int `json:"problem_solving"`
}

// Load parses and validates a configuration document and builds a Catalog.
func Load(data []byte) (*Catalog, error) {
	if err := validateConfig(data); err != nil {
		return nil, err
	}
	var cfg configDoc
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ErrInvalidConfig{Err: fmt.Errorf("decode: %w", err)}
	}
	return build(cfg)
}

// LoadFile loads a Catalog from a configuration file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Load(data)
}

// LoadDefault builds the Catalog from the embedded portal configuration.
func LoadDefault() (*Catalog, error) {
	return Load(defaultConfig)
}
