package shorebreak

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_ValidateDefaults(t *testing.T) {
	if err := DefaultConf.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestConfig_ValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero water mass", func(c *Config) { c.Water.Mass = 0 }},
		{"negative sand radius", func(c *Config) { c.Sand.Radius = -2.5 }},
		{"restitution above one", func(c *Config) { c.Water.Restitution = 1.5 }},
		{"negative friction", func(c *Config) { c.Sand.Friction = -0.1 }},
		{"zero timestep", func(c *Config) { c.Dt = 0 }},
		{"zero field", func(c *Config) { c.FieldWidth = 0 }},
		{"no bumps", func(c *Config) { c.BumpCount = 0 }},
		{"water below slope", func(c *Config) { c.WaterFillTop = c.FieldHeight }},
		{"zero wall thickness", func(c *Config) { c.Wave.Thickness = 0 }},
		{"zero frequency", func(c *Config) { c.Wave.FastFrequency = 0 }},
		{"overlapping spacing", func(c *Config) { c.Water.Spacing = 1.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *DefaultConf
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surf.toml")
	err := os.WriteFile(path, []byte(`
Gravity = 500.0
Seed = 99

[Water]
Radius = 3.0
Mass = 0.5
Friction = 0.07
Restitution = 0.05
Spacing = 2.8

[Wave]
BaseX = 900.0
Thickness = 20.0
FastFrequency = 0.5
FastAmplitude = 40.0
SlowPeriod = 10.0
SlowAmplitude = 120.0
`), 0644)
	require.NoError(t, err)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	// overridden values
	require.Equal(t, 500.0, cfg.Gravity)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, 3.0, cfg.Water.Radius)
	require.Equal(t, 0.5, cfg.Wave.FastFrequency)

	// untouched keys keep their defaults
	require.Equal(t, DefaultConf.FieldWidth, cfg.FieldWidth)
	require.Equal(t, DefaultConf.Sand.Mass, cfg.Sand.Mass)

	require.NoError(t, cfg.Validate())
}

func TestParseConfig_MissingFile(t *testing.T) {
	if _, err := ParseConfig("no/such/file.toml"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
