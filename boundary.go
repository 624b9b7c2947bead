package shorebreak

import "math/rand"

// A Boundary is a thick line segment. Static boundaries never move; the
// kinematic wave wall is repositioned every tick by the wave driver but is
// itself unaffected by collisions.
type Boundary struct {
	A, B Vector
	// N is the unit normal pointing into the fluid region.
	N Vector
	// R is the segment's half-thickness. Walls are thick so fast particles
	// cannot tunnel through in one step.
	R float64

	Restitution float64
	Friction    float64
	Filter      Filter

	Kinematic bool
	Vel       Vector
}

func NewBoundary(a, b Vector, r float64) *Boundary {
	return &Boundary{
		A: a,
		B: b,
		N: b.Sub(a).Normalize().ReversePerp(),
		R: r,
	}
}

// SetPosition translates the segment so its midpoint X lands on x. Only the
// wave wall moves, and it moves horizontally.
func (bound *Boundary) SetPositionX(x float64) {
	mid := (bound.A.X + bound.B.X) / 2
	dx := x - mid
	bound.A.X += dx
	bound.B.X += dx
}

// Surface is the bumpy sand slope: a polyline from (0, leftY) to
// (width, rightY) with seeded random bumps at interior points.
type Surface struct {
	points []Vector
	width  float64
}

func NewSurface(cfg *Config, rng *rand.Rand) *Surface {
	s := &Surface{width: cfg.FieldWidth}
	n := cfg.BumpCount
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x := t * cfg.FieldWidth
		y := Lerp(cfg.SandLeftY, cfg.SandRightY, t)
		if i != 0 && i != n {
			y += (rng.Float64()*2 - 1) * cfg.BumpHeight
		}
		s.points = append(s.points, Vector{x, y})
	}
	return s
}

// HeightAt returns the surface y at x, linearly interpolated between bump
// points.
func (s *Surface) HeightAt(x float64) float64 {
	x = Clamp(x, 0, s.width)
	for i := 0; i < len(s.points)-1; i++ {
		p1, p2 := s.points[i], s.points[i+1]
		if x < p1.X || x > p2.X {
			continue
		}
		if p2.X == p1.X {
			return p1.Y
		}
		t := (x - p1.X) / (p2.X - p1.X)
		return Lerp(p1.Y, p2.Y, t)
	}
	return s.points[len(s.points)-1].Y
}

func (s *Surface) Points() []Vector {
	return s.points
}

// staticBoundaries builds the fixed walls: the solid wedge below the sand
// layers, the floor, the side walls, a top lid, and a backup wall behind the
// wave wall's sweep that catches anything slipping past it.
func staticBoundaries(cfg *Config) []*Boundary {
	baseOffset := float64(cfg.SandLayers) * cfg.Sand.Radius * cfg.Sand.Spacing

	wedge := NewBoundary(Vector{0, cfg.SandLeftY + baseOffset}, Vector{cfg.FieldWidth, cfg.SandRightY + baseOffset}, 3)
	wedge.Friction = 0.8
	wedge.Restitution = 0.1
	wedge.Filter = Filter{CategoryBoundary, MaskBoundary}

	floor := NewBoundary(Vector{0, cfg.FieldHeight + 20}, Vector{cfg.FieldWidth, cfg.FieldHeight + 20}, 20)
	floor.Friction = 0.8
	floor.Restitution = 0.1
	floor.Filter = Filter{CategoryBoundary, MaskBoundary}

	left := NewBoundary(Vector{-10, 0}, Vector{-10, cfg.FieldHeight}, 10)
	left.Friction = 0.5
	left.Restitution = 0.1
	left.Filter = Filter{CategoryBoundary, MaskBoundary}

	top := NewBoundary(Vector{cfg.FieldWidth, -10}, Vector{0, -10}, 10)
	top.Friction = 0.5
	top.Restitution = 0.1
	top.Filter = Filter{CategoryBoundary, MaskBoundary}

	backup := NewBoundary(Vector{cfg.FieldWidth + 10, cfg.FieldHeight}, Vector{cfg.FieldWidth + 10, 0}, 10)
	backup.Friction = 0.5
	backup.Restitution = 0.1
	backup.Filter = Filter{CategoryWaveWall, MaskWaveWall}

	return []*Boundary{wedge, floor, left, top, backup}
}

// waveWall builds the kinematic wall at its base position. The wave driver
// owns its motion from then on.
func waveWall(cfg *Config) *Boundary {
	wall := NewBoundary(
		Vector{cfg.Wave.BaseX, cfg.FieldHeight * 1.5},
		Vector{cfg.Wave.BaseX, -cfg.FieldHeight * 0.5},
		cfg.Wave.Thickness,
	)
	wall.Friction = 0.3
	wall.Restitution = 0.2
	wall.Filter = Filter{CategoryWaveWall, MaskWaveWall}
	wall.Kinematic = true
	return wall
}
