package shorebreak

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MaterialConfig describes one particle class.
type MaterialConfig struct {
	Radius      float64 // unit: world units
	Mass        float64
	Friction    float64 // unit: 1, Coulomb coefficient
	Restitution float64 // unit: 1, must be <= 1
	Spacing     float64 // seeding spacing in radii
}

// WaveConfig describes the kinematic wall's initial state.
type WaveConfig struct {
	BaseX         float64 // rest position of the wall
	Thickness     float64 // half-thickness; thick walls prevent tunneling
	FastFrequency float64 // unit: Hz
	FastAmplitude float64
	SlowPeriod    float64 // unit: s
	SlowAmplitude float64 // zero disables the swell
}

// Config holds every startup-only parameter. Runtime mutation is limited to
// the wave parameters, through the WaveDriver setters.
type Config struct {
	FieldWidth  float64
	FieldHeight float64
	Gravity     float64 // downward, +Y
	Dt          float64 // fixed physics timestep
	Seed        int64   // layout jitter seed; fixed seed gives identical runs

	Water MaterialConfig
	Sand  MaterialConfig

	WaterFillTop float64 // water column starts at this height
	SandLeftY    float64 // slope height at the left edge
	SandRightY   float64 // slope height at the right edge
	BumpCount    int     // bump points along the sand surface
	BumpHeight   float64 // max random bump offset
	SandLayers   int     // particle layers below the surface

	Wave WaveConfig
}

// DefaultConf is a 1200x800 beach: a slope rising left to right, water
// filling the upper third, the wave wall sweeping the right edge.
var DefaultConf = &Config{
	FieldWidth:  1200,
	FieldHeight: 800,
	Gravity:     900,
	Dt:          1.0 / 60.0,
	Seed:        1,

	Water: MaterialConfig{
		Radius:      2.5,
		Mass:        0.5,
		Friction:    0.07,
		Restitution: 0.05,
		Spacing:     2.8,
	},
	Sand: MaterialConfig{
		Radius:      2.5,
		Mass:        2.0,
		Friction:    0.9,
		Restitution: 0.05,
		Spacing:     2.5,
	},

	WaterFillTop: 800 * 0.35,
	SandLeftY:    800.0 / 3.0,
	SandRightY:   800 - 50,
	BumpCount:    40,
	BumpHeight:   15,
	SandLayers:   8,

	Wave: WaveConfig{
		BaseX:         1200 - 40 - 120,
		Thickness:     20,
		FastFrequency: 0.25,
		FastAmplitude: 40,
		SlowPeriod:    10,
		SlowAmplitude: 120,
	},
}

// ParseConfig parses the TOML config file whose path is provided. The file
// overwrites default parameters; absent keys keep their defaults.
func ParseConfig(path string) (*Config, error) {
	conf := *DefaultConf
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate reports the first invalid startup constant. All failures here are
// fatal before the first tick.
func (cfg *Config) Validate() error {
	if cfg.FieldWidth <= 0 || cfg.FieldHeight <= 0 {
		return fmt.Errorf("config: field %gx%g must be positive", cfg.FieldWidth, cfg.FieldHeight)
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("config: timestep %g must be positive", cfg.Dt)
	}
	if err := cfg.Water.validate("water"); err != nil {
		return err
	}
	if err := cfg.Sand.validate("sand"); err != nil {
		return err
	}
	if cfg.BumpCount < 1 {
		return fmt.Errorf("config: bump count %d must be at least 1", cfg.BumpCount)
	}
	if cfg.SandLayers < 0 {
		return fmt.Errorf("config: sand layers %d must not be negative", cfg.SandLayers)
	}
	if cfg.SandLeftY < 0 || cfg.SandLeftY > cfg.FieldHeight ||
		cfg.SandRightY < 0 || cfg.SandRightY > cfg.FieldHeight {
		return fmt.Errorf("config: slope ends (%g, %g) outside field", cfg.SandLeftY, cfg.SandRightY)
	}
	if cfg.WaterFillTop >= cfg.SandRightY {
		return fmt.Errorf("config: water line %g below the slope, no water would spawn", cfg.WaterFillTop)
	}
	if cfg.Wave.Thickness <= 0 {
		return fmt.Errorf("config: wave wall thickness %g must be positive", cfg.Wave.Thickness)
	}
	if cfg.Wave.FastFrequency <= 0 || cfg.Wave.SlowPeriod <= 0 {
		return fmt.Errorf("config: wave frequency %g and period %g must be positive",
			cfg.Wave.FastFrequency, cfg.Wave.SlowPeriod)
	}
	if cfg.Wave.FastAmplitude < 0 || cfg.Wave.SlowAmplitude < 0 {
		return fmt.Errorf("config: wave amplitudes must not be negative")
	}
	return nil
}

func (m *MaterialConfig) validate(name string) error {
	if m.Radius <= 0 {
		return fmt.Errorf("config: %s radius %g must be positive", name, m.Radius)
	}
	if m.Mass <= 0 {
		return fmt.Errorf("config: %s mass %g must be positive", name, m.Mass)
	}
	if m.Restitution < 0 || m.Restitution > 1 {
		return fmt.Errorf("config: %s restitution %g outside [0,1]", name, m.Restitution)
	}
	if m.Friction < 0 {
		return fmt.Errorf("config: %s friction %g must not be negative", name, m.Friction)
	}
	if m.Spacing <= 2 {
		return fmt.Errorf("config: %s spacing %g must exceed 2 radii", name, m.Spacing)
	}
	return nil
}
