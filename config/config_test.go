package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate(), "the baseline configuration must be valid")
	require.Equal(t, "greedy", cfg.Strategy)
	require.Equal(t, 3, cfg.PaintBudget)
	require.Equal(t, 2, cfg.PathCaution)
	require.Equal(t, 100.0, cfg.Track.Base)
	require.Equal(t, -3000.0, cfg.Disruption.Illegal)
}

func TestLoad(t *testing.T) {
	t.Run("empty path keeps defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("file values override, unset fields keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		raw := "path_caution: 3\ntrack:\n  on_desired_path: 60\n"
		require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 3, cfg.PathCaution)
		require.Equal(t, 60.0, cfg.Track.OnDesiredPath)
		require.Equal(t, "greedy", cfg.Strategy, "unset strategy keeps the default")
		require.Equal(t, -5.0, cfg.Track.TerrainCost, "unset weights keep their defaults")
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid values are rejected on load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		require.NoError(t, os.WriteFile(path, []byte("paint_budget: 0\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero paint budget", func(c *Config) { c.PaintBudget = 0 }},
		{"caution below range", func(c *Config) { c.PathCaution = 0 }},
		{"caution above range", func(c *Config) { c.PathCaution = 4 }},
		{"non-negative inked sentinel", func(c *Config) { c.Track.Inked = 0 }},
		{"non-negative track sentinel", func(c *Config) { c.Track.ExistingTrack = 10 }},
		{"non-negative illegal sentinel", func(c *Config) { c.Disruption.Illegal = 1 }},
		{"unknown strategy", func(c *Config) { c.Strategy = "montecarlo" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
