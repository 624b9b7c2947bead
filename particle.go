package shorebreak

import (
	"math"
	"math/rand"
)

// Collision categories. Each particle and boundary carries a Filter; two
// things interact only when each one's category is in the other's mask.
const (
	CategoryWater uint = 1 << iota
	CategorySand
	CategoryBoundary
	CategoryWaveWall
)

const (
	MaskWater    = CategoryWater | CategorySand | CategoryBoundary | CategoryWaveWall
	MaskSand     = CategoryWater | CategorySand | CategoryBoundary
	MaskBoundary = CategoryWater | CategorySand | CategoryBoundary | CategoryWaveWall
	MaskWaveWall = CategoryWater
)

type Filter struct {
	Categories uint
	Mask       uint
}

func (f Filter) Reject(other Filter) bool {
	return f.Categories&other.Mask == 0 || other.Categories&f.Mask == 0
}

type Class int

const (
	ClassWater Class = iota
	ClassSand
)

// A Particle is a disk with no angular state. Identity is the index into the
// ParticleSystem's array; nothing holds particle pointers across ticks.
type Particle struct {
	Pos, Vel    Vector
	Radius      float64
	Mass        float64
	mInv        float64
	Restitution float64
	Friction    float64
	Class       Class
	Filter      Filter
}

// ParticleSystem owns the particle array. The population is fixed at seed
// time; Reset rebuilds the same layout, never a different count.
type ParticleSystem struct {
	particles []Particle

	gravity     Vector
	sandGravity Vector
}

func NewParticleSystem(cfg *Config, surface *Surface, rng *rand.Rand) *ParticleSystem {
	ps := &ParticleSystem{
		gravity:     Vector{0, cfg.Gravity},
		sandGravity: sandGravityDir(cfg).Mult(cfg.Gravity),
	}
	ps.seed(cfg, surface, rng)
	return ps
}

// sandGravityDir is the unit normal to the average slope, flipped if needed so
// it points generally downward. Sand settles against the slope instead of
// sliding to the bottom corner.
func sandGravityDir(cfg *Config) Vector {
	slope := Vector{cfg.FieldWidth, cfg.SandRightY - cfg.SandLeftY}
	dir := Vector{slope.Y, -slope.X}.Normalize()
	if dir.Y < 0 {
		dir = dir.Neg()
	}
	return dir
}

func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}

func (ps *ParticleSystem) At(i int) *Particle {
	return &ps.particles[i]
}

// Integrate advances every particle by semi-implicit Euler: velocity first,
// then position with the updated velocity. Particles do not interact here, so
// iteration order does not matter.
func (ps *ParticleSystem) Integrate(dt float64) {
	for i := range ps.particles {
		p := &ps.particles[i]
		g := ps.gravity
		if p.Class == ClassSand {
			g = ps.sandGravity
		}
		p.Vel = p.Vel.Add(g.Mult(dt))
		p.Pos = p.Pos.Add(p.Vel.Mult(dt))
	}
}

// Reset rebuilds the initial layout with zero velocity. rng must be freshly
// seeded by the caller; the layout is then identical to the one produced at
// startup with the same seed.
func (ps *ParticleSystem) Reset(cfg *Config, surface *Surface, rng *rand.Rand) {
	ps.particles = ps.particles[:0]
	ps.seed(cfg, surface, rng)
}

func (ps *ParticleSystem) seed(cfg *Config, surface *Surface, rng *rand.Rand) {
	ps.seedSand(cfg, surface, rng)
	ps.seedWater(cfg, surface, rng)
}

// seedSand lays particles in rows following the bumpy surface, working down
// layer by layer into the wedge.
func (ps *ParticleSystem) seedSand(cfg *Config, surface *Surface, rng *rand.Rand) {
	spacing := cfg.Sand.Radius * cfg.Sand.Spacing
	for x := cfg.Sand.Radius; x < cfg.FieldWidth-cfg.Sand.Radius; x += spacing {
		surfaceY := surface.HeightAt(x)
		for layer := 0; layer < cfg.SandLayers; layer++ {
			y := surfaceY + float64(layer)*spacing
			if y > cfg.FieldHeight-cfg.Sand.Radius {
				continue
			}
			ps.particles = append(ps.particles, Particle{
				Pos:         Vector{x + jitter(rng), y + jitter(rng)},
				Radius:      cfg.Sand.Radius,
				Mass:        cfg.Sand.Mass,
				mInv:        1.0 / cfg.Sand.Mass,
				Restitution: cfg.Sand.Restitution,
				Friction:    cfg.Sand.Friction,
				Class:       ClassSand,
				Filter:      Filter{CategorySand, MaskSand},
			})
		}
	}
}

// seedWater fills columns from the water line down to just above the sand,
// stopping short of the wave wall's full sweep.
func (ps *ParticleSystem) seedWater(cfg *Config, surface *Surface, rng *rand.Rand) {
	spacing := cfg.Water.Radius * cfg.Water.Spacing
	sweep := cfg.Wave.FastAmplitude + cfg.Wave.SlowAmplitude
	maxX := cfg.Wave.BaseX - sweep - cfg.Wave.Thickness - cfg.Water.Radius*2
	for x := cfg.Water.Radius * 2; x < maxX; x += spacing {
		sandY := surface.HeightAt(x)
		for y := cfg.WaterFillTop; y < sandY-cfg.Water.Radius*2; y += spacing {
			ps.particles = append(ps.particles, Particle{
				Pos:         Vector{x + jitter(rng), y + jitter(rng)},
				Radius:      cfg.Water.Radius,
				Mass:        cfg.Water.Mass,
				mInv:        1.0 / cfg.Water.Mass,
				Restitution: cfg.Water.Restitution,
				Friction:    cfg.Water.Friction,
				Class:       ClassWater,
				Filter:      Filter{CategoryWater, MaskWater},
			})
		}
	}
}

func jitter(rng *rand.Rand) float64 {
	return rng.Float64()*2 - 1
}

// MaxRadius is used to size the broad-phase cells.
func (ps *ParticleSystem) MaxRadius() float64 {
	max := 0.0
	for i := range ps.particles {
		max = math.Max(max, ps.particles[i].Radius)
	}
	return max
}
