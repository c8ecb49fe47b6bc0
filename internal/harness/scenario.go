package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance scenario: one dataset plus the expected
// rows of both reports.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Dataset is the dataset directory (donors.csv, assignments.csv,
	// donations.csv). Relative paths resolve against the scenario file.
	Dataset string `yaml:"dataset"`

	// TopN caps the donation leader report. Zero means the published
	// default of five.
	TopN int `yaml:"top_n,omitempty"`

	// RunToken is an optional fixed run token for deterministic logs.
	// If empty, a fresh UUIDv7 token is generated per run.
	RunToken string `yaml:"run_token,omitempty"`

	// Expect holds the expected report rows in output order. Scenarios
	// that rely on golden tables alone may omit it.
	Expect *Expectations `yaml:"expect,omitempty"`
}

// Expectations lists expected rows for both reports, in output order.
type Expectations struct {
	DonationLeaders []LeaderRow   `yaml:"donation_leaders"`
	RegionalImpact  []RegionalRow `yaml:"regional_impact"`
}

// LeaderRow is one expected donation leader row. Total is decimal text
// ("12400.00") parsed with the same rules as dataset amounts.
type LeaderRow struct {
	Assignment string `yaml:"assignment"`
	Region     string `yaml:"region"`
	DonorType  string `yaml:"donor_type"`
	Total      string `yaml:"total"`
}

// RegionalRow is one expected regional impact row. Impact is decimal
// text on the 0-10 scale ("9.5").
type RegionalRow struct {
	Assignment string `yaml:"assignment"`
	Region     string `yaml:"region"`
	Impact     string `yaml:"impact"`
	Donations  int64  `yaml:"donations"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected (catches typos like "expects:" vs "expect:").
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.Dataset != "" && !filepath.IsAbs(scenario.Dataset) {
		scenario.Dataset = filepath.Join(filepath.Dir(path), scenario.Dataset)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	info, err := os.Stat(s.Dataset)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("dataset directory not found: %s", s.Dataset)
	}
	if s.TopN < 0 {
		return fmt.Errorf("top_n must be non-negative")
	}
	return nil
}
