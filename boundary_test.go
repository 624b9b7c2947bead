package shorebreak

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundary_NormalsAreUnitAndInward(t *testing.T) {
	cfg := testConfig()
	for i, bound := range staticBoundaries(cfg) {
		assert.InDelta(t, 1.0, bound.N.Length(), 1e-9, "boundary %d normal not unit", i)
	}

	// floor normal points up (toward the fluid, -Y in screen coordinates)
	floor := NewBoundary(Vector{0, 100}, Vector{200, 100}, 3)
	assert.InDelta(t, -1.0, floor.N.Y, 1e-9)

	// wave wall normal points left, into the pool
	wall := waveWall(cfg)
	assert.InDelta(t, -1.0, wall.N.X, 1e-9)
	assert.True(t, wall.Kinematic)
}

func TestBoundary_DegenerateSegment(t *testing.T) {
	// A zero-length segment has no direction, but its normal must still be
	// finite so the resolver never propagates NaN into particle state.
	bound := NewBoundary(Vector{50, 50}, Vector{50, 50}, 3)
	assert.True(t, bound.N.IsFinite(), "degenerate segment normal: %v", bound.N)
}

func TestBoundary_SetPositionX(t *testing.T) {
	cfg := testConfig()
	wall := waveWall(cfg)
	ay, by := wall.A.Y, wall.B.Y

	wall.SetPositionX(300)
	assert.Equal(t, 300.0, wall.A.X)
	assert.Equal(t, 300.0, wall.B.X)
	assert.Equal(t, ay, wall.A.Y)
	assert.Equal(t, by, wall.B.Y)
}

func TestSurface_HeightAt(t *testing.T) {
	cfg := testConfig()
	s := NewSurface(cfg, rand.New(rand.NewSource(cfg.Seed)))

	// edges carry no bumps, so they hit the slope ends exactly
	assert.InDelta(t, cfg.SandLeftY, s.HeightAt(0), 1e-9)
	assert.InDelta(t, cfg.SandRightY, s.HeightAt(cfg.FieldWidth), 1e-9)

	// interior heights stay within the bump envelope around the line
	for x := 0.0; x <= cfg.FieldWidth; x += 7 {
		base := Lerp(cfg.SandLeftY, cfg.SandRightY, x/cfg.FieldWidth)
		h := s.HeightAt(x)
		assert.LessOrEqual(t, h, base+cfg.BumpHeight+1e-9, "x=%v", x)
		assert.GreaterOrEqual(t, h, base-cfg.BumpHeight-1e-9, "x=%v", x)
	}

	// out-of-range x clamps
	assert.Equal(t, s.HeightAt(0), s.HeightAt(-50))
	assert.Equal(t, s.HeightAt(cfg.FieldWidth), s.HeightAt(cfg.FieldWidth+50))
}

func TestSurface_Deterministic(t *testing.T) {
	cfg := testConfig()
	s1 := NewSurface(cfg, rand.New(rand.NewSource(5)))
	s2 := NewSurface(cfg, rand.New(rand.NewSource(5)))
	assert.Equal(t, s1.Points(), s2.Points())
}
