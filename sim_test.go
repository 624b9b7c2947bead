package shorebreak

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// testConfig shrinks the playfield so tests run on a few hundred particles
// instead of several thousand.
func testConfig() *Config {
	cfg := *DefaultConf
	cfg.FieldWidth = 300
	cfg.FieldHeight = 200
	cfg.SandLeftY = 80
	cfg.SandRightY = 180
	cfg.WaterFillTop = 70
	cfg.BumpCount = 10
	cfg.BumpHeight = 5
	cfg.SandLayers = 2
	cfg.Wave = WaveConfig{
		BaseX:         230,
		Thickness:     10,
		FastFrequency: 0.25,
		FastAmplitude: 10,
		SlowPeriod:    10,
		SlowAmplitude: 20,
	}
	return &cfg
}

func TestSim_Deterministic(t *testing.T) {
	cfg := testConfig()
	sim1, err := NewSim(cfg)
	require.NoError(t, err)
	sim2, err := NewSim(cfg)
	require.NoError(t, err)

	dt := cfg.Dt
	for i := 0; i < 60; i++ {
		sim1.Step(dt)
		sim2.Step(dt)
	}

	require.Equal(t, sim1.Particles().Count(), sim2.Particles().Count())
	for i := 0; i < sim1.Particles().Count(); i++ {
		a, b := sim1.Particles().At(i), sim2.Particles().At(i)
		if a.Pos != b.Pos || a.Vel != b.Vel {
			t.Fatalf("trajectories diverged at particle %d: %v/%v vs %v/%v",
				i, a.Pos, a.Vel, b.Pos, b.Vel)
		}
	}
}

func TestSim_StateStaysFiniteAndContained(t *testing.T) {
	cfg := testConfig()
	sim, err := NewSim(cfg)
	require.NoError(t, err)

	dt := cfg.Dt
	for i := 0; i < 120; i++ {
		sim.Step(dt)
	}

	ps := sim.Particles()
	for i := 0; i < ps.Count(); i++ {
		p := ps.At(i)
		if !p.Pos.IsFinite() || !p.Vel.IsFinite() {
			t.Fatalf("particle %d went non-finite: %v/%v", i, p.Pos, p.Vel)
		}
		if p.Pos.X < 0 || p.Pos.X > cfg.FieldWidth || p.Pos.Y < 0 || p.Pos.Y > cfg.FieldHeight {
			t.Fatalf("particle %d escaped the playfield: %v", i, p.Pos)
		}
	}
}

func TestSim_ResetRestoresLayout(t *testing.T) {
	cfg := testConfig()
	sim, err := NewSim(cfg)
	require.NoError(t, err)
	fresh, err := NewSim(cfg)
	require.NoError(t, err)

	sim.Wave().SetFrequency(0.8)
	for i := 0; i < 90; i++ {
		sim.Step(cfg.Dt)
	}
	sim.Reset()

	require.Equal(t, fresh.Particles().Count(), sim.Particles().Count(),
		"reset must restore the particle count")
	for i := 0; i < sim.Particles().Count(); i++ {
		a, b := sim.Particles().At(i), fresh.Particles().At(i)
		if a.Pos != b.Pos {
			t.Fatalf("particle %d not restored: %v vs %v", i, a.Pos, b.Pos)
		}
		if a.Vel != (Vector{}) {
			t.Fatalf("particle %d velocity not zeroed: %v", i, a.Vel)
		}
	}

	// wave parameters survive the reset
	require.Equal(t, 0.8, sim.Wave().Frequency())
}

func TestSim_SetFrequencyBetweenTicks(t *testing.T) {
	cfg := testConfig()
	sim, err := NewSim(cfg)
	require.NoError(t, err)

	sim.Step(cfg.Dt)
	sim.Wave().SetFrequency(0.03) // below range, clamps
	sim.Step(cfg.Dt)
	require.Equal(t, 0.05, sim.Wave().Frequency())
}

func TestSim_Snapshot(t *testing.T) {
	cfg := testConfig()
	sim, err := NewSim(cfg)
	require.NoError(t, err)
	sim.Step(cfg.Dt)

	var snap Snapshot
	sim.Snapshot(&snap)

	require.Equal(t, sim.Particles().Count(), len(snap.Particles))
	require.Equal(t, cfg.BumpCount+1, len(snap.Surface))
	require.Equal(t, sim.Time(), snap.Time)

	// reuse must not leak stale entries
	sim.Step(cfg.Dt)
	sim.Snapshot(&snap)
	require.Equal(t, sim.Particles().Count(), len(snap.Particles))
}

func TestNewSim_RejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Water.Mass = 0
	if _, err := NewSim(cfg); err == nil {
		t.Fatal("expected configuration error for zero mass")
	}

	cfg = testConfig()
	cfg.Water.Radius = -1
	if _, err := NewSim(cfg); err == nil {
		t.Fatal("expected configuration error for negative radius")
	}
}
