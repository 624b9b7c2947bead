package shorebreak

import (
	"fmt"
	"math/rand"
)

// Sim owns the whole simulation state: particles, boundaries, the wave
// driver, and the clock. Everything runs sequentially inside Step; the only
// writes allowed from outside the tick are the wave parameter setters.
type Sim struct {
	cfg *Config
	rng *rand.Rand

	surface    *Surface
	particles  *ParticleSystem
	boundaries []*Boundary
	wall       *Boundary

	wave     *WaveDriver
	grid     *SpatialGrid
	resolver *Resolver

	time float64
}

func NewSim(cfg *Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	surface := NewSurface(cfg, rng)
	particles := NewParticleSystem(cfg, surface, rng)
	if particles.Count() == 0 {
		return nil, fmt.Errorf("config: no particles spawned, field too small for the given layout")
	}

	wall := waveWall(cfg)
	boundaries := append(staticBoundaries(cfg), wall)

	return &Sim{
		cfg:        cfg,
		rng:        rng,
		surface:    surface,
		particles:  particles,
		boundaries: boundaries,
		wall:       wall,
		wave:       NewWaveDriver(cfg, wall),
		grid:       NewSpatialGrid(cfg.FieldWidth, cfg.FieldHeight, 2*particles.MaxRadius()),
		resolver:   NewResolver(),
	}, nil
}

func (s *Sim) Config() *Config            { return s.cfg }
func (s *Sim) Wave() *WaveDriver          { return s.wave }
func (s *Sim) Time() float64              { return s.time }
func (s *Sim) Particles() *ParticleSystem { return s.particles }
func (s *Sim) Surface() *Surface          { return s.surface }

// Step advances the simulation by one fixed timestep: wave update, gravity
// integration, broad-phase rebuild, collision resolution, field clamp.
func (s *Sim) Step(dt float64) {
	s.time += dt
	s.wave.Update(s.time)
	s.resolver.Begin(s.particles)
	s.particles.Integrate(dt)
	s.grid.Rebuild(s.particles)
	s.resolver.Resolve(s.particles, s.boundaries, s.grid)
	s.clampToField()
}

// clampToField forces every particle back inside the playfield rectangle,
// zeroing velocity on the offending axis. Water that slipped behind the wave
// wall is pushed back in front of it.
func (s *Sim) clampToField() {
	wallX := s.wall.A.X + s.cfg.Wave.Thickness
	for i := 0; i < s.particles.Count(); i++ {
		p := s.particles.At(i)
		r := p.Radius

		if p.Pos.X < r {
			p.Pos.X = r
			p.Vel.X = 0
		} else if p.Pos.X > s.cfg.FieldWidth-r {
			p.Pos.X = s.cfg.FieldWidth - r
			p.Vel.X = 0
		}
		if p.Pos.Y < r {
			p.Pos.Y = r
			p.Vel.Y = 0
		} else if p.Pos.Y > s.cfg.FieldHeight-r {
			p.Pos.Y = s.cfg.FieldHeight - r
			p.Vel.Y = 0
		}

		if p.Class == ClassWater && p.Pos.X > wallX {
			p.Pos.X = wallX - r - 1
			if p.Vel.X > 0 {
				p.Vel.X = 0
			}
		}
	}
}

// Reset reseeds the particle layout from the configured seed. Boundaries, the
// wave parameters, and the clock are preserved; the layout is bit-identical
// to the startup layout.
func (s *Sim) Reset() {
	s.rng = rand.New(rand.NewSource(s.cfg.Seed))
	s.surface = NewSurface(s.cfg, s.rng)
	s.particles.Reset(s.cfg, s.surface, s.rng)
}

// ParticleView is the render collaborator's read-only view of one particle.
type ParticleView struct {
	Pos    Vector
	Radius float64
	Class  Class
}

// Snapshot is a per-tick copy of everything the renderer needs. The core
// never calls into the renderer; the renderer fills a Snapshot between ticks.
type Snapshot struct {
	Time      float64
	Particles []ParticleView
	Surface   []Vector
	WallX     float64
	WallThick float64
}

// Snapshot fills dst, reusing its slices when they have capacity.
func (s *Sim) Snapshot(dst *Snapshot) {
	dst.Time = s.time
	dst.WallX = s.wall.A.X
	dst.WallThick = s.cfg.Wave.Thickness
	dst.Surface = append(dst.Surface[:0], s.surface.Points()...)

	dst.Particles = dst.Particles[:0]
	for i := 0; i < s.particles.Count(); i++ {
		p := s.particles.At(i)
		dst.Particles = append(dst.Particles, ParticleView{p.Pos, p.Radius, p.Class})
	}
}
