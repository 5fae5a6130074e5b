// Package config loads the engine's tunable parameters from YAML. Different
// playing styles are different weight files, not different code paths.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"railbot/pathfind"
	"railbot/planner"
	"railbot/scoring"
)

// Config is the full tunable surface of the engine.
type Config struct {
	Strategy    string `yaml:"strategy"`     // planner strategy name, "greedy" by default
	PaintBudget int    `yaml:"paint_budget"` // paint points per turn
	PathCaution int    `yaml:"path_caution"` // regions at or above this instability are skipped by routing

	Track      scoring.TrackWeights      `yaml:"track"`
	Disruption scoring.DisruptionWeights `yaml:"disruption"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Strategy:    "greedy",
		PaintBudget: planner.DefaultPaintBudget,
		PathCaution: pathfind.DefaultCaution,
		Track:       scoring.DefaultTrackWeights(),
		Disruption:  scoring.DefaultDisruptionWeights(),
	}
}

// Load reads a config file, filling unset fields from Default. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the planner cannot honor.
func (c Config) Validate() error {
	if c.PaintBudget <= 0 {
		return fmt.Errorf("paint_budget must be positive, got %d", c.PaintBudget)
	}
	if c.PathCaution < 1 || c.PathCaution > 3 {
		return fmt.Errorf("path_caution must be in [1,3], got %d", c.PathCaution)
	}
	if c.Track.Inked >= 0 || c.Track.ExistingTrack >= 0 {
		return fmt.Errorf("track sentinels must be negative")
	}
	if c.Disruption.Illegal >= 0 {
		return fmt.Errorf("disruption illegal sentinel must be negative")
	}
	if _, err := planner.ForName(c.Strategy, c.PaintBudget); err != nil {
		return err
	}
	return nil
}
