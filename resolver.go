package shorebreak

import (
	"log"
	"math"
)

// solverPasses is the fixed number of relaxation passes per tick. More passes
// converge multi-contact stacks better at a linear cost; the value is constant
// so runs stay reproducible.
const solverPasses = 3

// combine merges two material coefficients into one contact coefficient by
// geometric mean. For equal materials this returns the material value itself.
func combine(a, b float64) float64 {
	return math.Sqrt(a * b)
}

// Resolver separates overlapping disks and applies impulse-based collision
// response. Within each relaxation pass particle pairs are processed before
// boundary contacts, so boundary pushout always runs on pair-corrected
// positions.
type Resolver struct {
	prevPos []Vector
	prevVel []Vector
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Begin snapshots the last valid state of every particle. A tick that later
// produces non-finite state for a particle is rolled back to this snapshot.
// Already non-finite entries are not captured, so the snapshot always holds
// the last state that was actually valid.
func (r *Resolver) Begin(ps *ParticleSystem) {
	n := ps.Count()
	if len(r.prevPos) != n {
		r.prevPos = make([]Vector, n)
		r.prevVel = make([]Vector, n)
		for i := 0; i < n; i++ {
			r.prevPos[i] = ps.At(i).Pos
		}
	}
	for i := 0; i < n; i++ {
		p := ps.At(i)
		if p.Pos.IsFinite() && p.Vel.IsFinite() {
			r.prevPos[i] = p.Pos
			r.prevVel[i] = p.Vel
		}
	}
}

func (r *Resolver) Resolve(ps *ParticleSystem, boundaries []*Boundary, grid *SpatialGrid) {
	for pass := 0; pass < solverPasses; pass++ {
		grid.ForEachPair(func(i, j int) {
			resolvePair(ps.At(i), ps.At(j))
		})
		for i := 0; i < ps.Count(); i++ {
			p := ps.At(i)
			for _, bound := range boundaries {
				if p.Filter.Reject(bound.Filter) {
					continue
				}
				resolveBoundary(p, bound)
			}
		}
	}
	r.recover(ps)
}

// recover reverts any particle whose position or velocity went non-finite to
// its pre-tick state. This is a recoverable numerical fault, not a crash.
func (r *Resolver) recover(ps *ParticleSystem) {
	for i := 0; i < ps.Count(); i++ {
		p := ps.At(i)
		if p.Pos.IsFinite() && p.Vel.IsFinite() {
			continue
		}
		log.Printf("numerical fault: particle %d state %v/%v reverted", i, p.Pos, p.Vel)
		p.Pos = r.prevPos[i]
		p.Vel = r.prevVel[i]
	}
}

func resolvePair(a, b *Particle) {
	if a.Filter.Reject(b.Filter) {
		return
	}

	delta := b.Pos.Sub(a.Pos)
	rsum := a.Radius + b.Radius
	distSq := delta.LengthSq()
	if distSq >= rsum*rsum {
		return
	}

	dist := math.Sqrt(distSq)
	n := Vector{0, 1}
	if dist > 1e-9 {
		n = delta.Mult(1 / dist)
	}

	// Separate along the contact normal, split by inverse mass.
	mSum := a.mInv + b.mInv
	overlap := rsum - dist
	a.Pos = a.Pos.Sub(n.Mult(overlap * a.mInv / mSum))
	b.Pos = b.Pos.Add(n.Mult(overlap * b.mInv / mSum))

	rv := b.Vel.Sub(a.Vel)
	vn := rv.Dot(n)
	if vn >= 0 {
		// already separating
		return
	}

	e := combine(a.Restitution, b.Restitution)
	jn := -(1 + e) * vn / mSum
	impulse := n.Mult(jn)
	a.Vel = a.Vel.Sub(impulse.Mult(a.mInv))
	b.Vel = b.Vel.Add(impulse.Mult(b.mInv))

	// Coulomb friction: the tangential impulse is clamped by mu times the
	// normal impulse.
	tangent := rv.Sub(n.Mult(vn))
	tLen := tangent.Length()
	if tLen < 1e-9 {
		return
	}
	tDir := tangent.Mult(1 / tLen)
	jt := -rv.Dot(tDir) / mSum
	mu := combine(a.Friction, b.Friction)
	jt = Clamp(jt, -mu*jn, mu*jn)
	fImpulse := tDir.Mult(jt)
	a.Vel = a.Vel.Sub(fImpulse.Mult(a.mInv))
	b.Vel = b.Vel.Add(fImpulse.Mult(b.mInv))
}

func resolveBoundary(p *Particle, bound *Boundary) {
	seg := bound.B.Sub(bound.A)
	t := Clamp01(p.Pos.Sub(bound.A).Dot(seg) / seg.LengthSq())
	closest := bound.A.Add(seg.Mult(t))
	delta := p.Pos.Sub(closest)
	reach := p.Radius + bound.R

	// Inside the segment span use the boundary's own normal and the signed
	// distance along it. A particle that tunneled past the centerline then
	// has a negative signed distance and still gets pushed out the fluid
	// side. At the endcaps fall back to a radial normal.
	var n Vector
	var sd float64
	if t > 0 && t < 1 {
		n = bound.N
		sd = delta.Dot(n)
	} else {
		d := delta.Length()
		if d < 1e-9 {
			n = bound.N
		} else {
			n = delta.Mult(1 / d)
		}
		sd = d
	}
	if sd >= reach {
		return
	}

	p.Pos = p.Pos.Add(n.Mult(reach - sd))

	rel := p.Vel.Sub(bound.Vel)
	vn := rel.Dot(n)
	if vn >= 0 {
		return
	}

	e := combine(p.Restitution, bound.Restitution)
	mu := combine(p.Friction, bound.Friction)
	vt := rel.Sub(n.Mult(vn))
	damped := vt.Mult(math.Max(0, 1-mu))

	// Reflect the normal component against restitution; a kinematic wall's
	// own velocity is added back so pushed particles inherit its momentum.
	p.Vel = bound.Vel.Add(n.Mult(-e * vn)).Add(damped)
}
