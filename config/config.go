// Package config provides scenario configuration loading for coenocline
// simulations: which model to run, how sites are placed along the gradients,
// and the ranges species parameters are drawn from.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Simulation models selectable in a scenario.
const (
	ModelCounts1     = "counts1"     // single-gradient negative binomial counts
	ModelCounts2     = "counts2"     // two-gradient negative binomial counts
	ModelOccurrence2 = "occurrence2" // two-gradient Bernoulli presence/absence
)

// Site placement strategies.
const (
	PlacementEven   = "even"
	PlacementRandom = "random"
)

// Config describes one simulation scenario.
type Config struct {
	Model       string  `yaml:"model"`
	Seed        uint64  `yaml:"seed"`
	Expectation bool    `yaml:"expectation"`
	Alpha       float64 `yaml:"alpha"` // negative binomial dispersion (count models)
	Corr        float64 `yaml:"corr"`  // gradient correlation (two-gradient models)

	Sites   SitesConfig   `yaml:"sites"`
	Species SpeciesConfig `yaml:"species"`
}

// RangeConfig is a closed numeric interval.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// SitesConfig controls how many sites are surveyed and where they sit on each
// gradient. Gradient2 is ignored by single-gradient models.
type SitesConfig struct {
	Count     int         `yaml:"count"`
	Placement string      `yaml:"placement"`
	Gradient1 RangeConfig `yaml:"gradient1"`
	Gradient2 RangeConfig `yaml:"gradient2"`
}

// SpeciesAxisConfig bounds the per-species response parameters on one
// gradient axis.
type SpeciesAxisConfig struct {
	Opt RangeConfig `yaml:"opt"`
	Tol RangeConfig `yaml:"tol"`
}

// SpeciesConfig controls the simulated community: how many species and the
// ranges their response parameters are drawn from. Height is the peak
// abundance for count models and the peak occurrence probability for
// occurrence models.
type SpeciesConfig struct {
	Count     int               `yaml:"count"`
	Height    RangeConfig       `yaml:"height"`
	Gradient1 SpeciesAxisConfig `yaml:"gradient1"`
	Gradient2 SpeciesAxisConfig `yaml:"gradient2"`
}

// TwoGradients reports whether the scenario's model uses a second gradient.
func (c *Config) TwoGradients() bool {
	return c.Model == ModelCounts2 || c.Model == ModelOccurrence2
}

// Counts reports whether the scenario's model produces count data.
func (c *Config) Counts() bool {
	return c.Model == ModelCounts1 || c.Model == ModelCounts2
}

// Load loads a scenario from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user scenario if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading scenario file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing scenario file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the scenario for contradictions before any simulation work
// begins.
func (c *Config) Validate() error {
	switch c.Model {
	case ModelCounts1, ModelCounts2, ModelOccurrence2:
	default:
		return fmt.Errorf("unknown model %q", c.Model)
	}
	switch c.Sites.Placement {
	case PlacementEven, PlacementRandom:
	default:
		return fmt.Errorf("unknown site placement %q", c.Sites.Placement)
	}

	if c.Sites.Count <= 0 {
		return fmt.Errorf("sites.count must be positive, got %d", c.Sites.Count)
	}
	if c.Species.Count <= 0 {
		return fmt.Errorf("species.count must be positive, got %d", c.Species.Count)
	}

	if c.Counts() && c.Alpha <= 0 {
		return fmt.Errorf("alpha must be positive for count models, got %v", c.Alpha)
	}
	if c.TwoGradients() && (c.Corr <= -1 || c.Corr >= 1) {
		return fmt.Errorf("corr must lie in (-1, 1), got %v", c.Corr)
	}

	if err := validateAxis("species.gradient1", c.Species.Gradient1); err != nil {
		return err
	}
	if c.TwoGradients() {
		if err := validateAxis("species.gradient2", c.Species.Gradient2); err != nil {
			return err
		}
	}

	if c.Species.Height.Min < 0 || c.Species.Height.Min > c.Species.Height.Max {
		return fmt.Errorf("species.height range [%v, %v] must be non-negative and ordered",
			c.Species.Height.Min, c.Species.Height.Max)
	}
	if c.Model == ModelOccurrence2 && c.Species.Height.Max > 1 {
		return fmt.Errorf("species.height must stay within [0, 1] for occurrence models, got max %v",
			c.Species.Height.Max)
	}
	return nil
}

func validateAxis(name string, a SpeciesAxisConfig) error {
	if a.Opt.Min > a.Opt.Max {
		return fmt.Errorf("%s.opt range [%v, %v] is inverted", name, a.Opt.Min, a.Opt.Max)
	}
	if a.Tol.Min <= 0 || a.Tol.Min > a.Tol.Max {
		return fmt.Errorf("%s.tol range [%v, %v] must be positive and ordered", name, a.Tol.Min, a.Tol.Max)
	}
	return nil
}

// WriteYAML writes the scenario to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing scenario file: %w", err)
	}
	return nil
}
