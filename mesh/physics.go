package mesh

import (
	"math"
	"math/rand"
)

// Tunables for the point dynamics. Distances are in pixels, and one step is one
// frame.
type Params struct {
	BrownianStrength  float64 `yaml:"brownian_strength"`
	MaxDistance       float64 `yaml:"max_distance"`
	ReturnForce       float64 `yaml:"return_force"`
	RepulsionRadius   float64 `yaml:"repulsion_radius"`
	RepulsionStrength float64 `yaml:"repulsion_strength"`
	BounceFactor      float64 `yaml:"bounce_factor"`
	Friction          float64 `yaml:"friction"`
}

func DefaultParams() Params {
	return Params{
		BrownianStrength:  0.2,
		MaxDistance:       5,
		ReturnForce:       0.1,
		RepulsionRadius:   100,
		RepulsionStrength: 5,
		BounceFactor:      0.5,
		Friction:          0.9,
	}
}

type Physics struct {
	Params Params
	rng    *rand.Rand
}

// If rng is nil, a generator with a fixed seed is used, which makes runs
// reproducible.
func NewPhysics(params Params, rng *rand.Rand) *Physics {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Physics{Params: params, rng: rng}
}

// Advance every point in the store by one frame. The phases run over the whole
// set in a fixed order: jitter, return force, then per point integration,
// reflection off the viewport edges and friction.
func (ph *Physics) Step(store *Store, width, height int) {
	store.Each(ph.jitter)
	store.Each(ph.pullTowardAnchor)
	w, h := float64(width), float64(height)
	store.Each(func(p *Point) {
		// Semi-implicit Euler with a unit time step
		p.X += p.VX
		p.Y += p.VY
		ph.reflect(p, w, h)
		p.VX *= ph.Params.Friction
		p.VY *= ph.Params.Friction
	})
}

func (ph *Physics) jitter(p *Point) {
	p.VX += (ph.rng.Float64() - 0.5) * ph.Params.BrownianStrength
	p.VY += (ph.rng.Float64() - 0.5) * ph.Params.BrownianStrength
}

// Inside MaxDistance of the anchor there is no force at all. Past it, the pull
// grows linearly with the overshoot.
func (ph *Physics) pullTowardAnchor(p *Point) {
	dx := p.X - p.OrigX
	dy := p.Y - p.OrigY
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist <= ph.Params.MaxDistance {
		return
	}
	force := (dist - ph.Params.MaxDistance) * ph.Params.ReturnForce
	p.VX -= dx / dist * force
	p.VY -= dy / dist * force
}

func (ph *Physics) reflect(p *Point, width, height float64) {
	bounce := ph.Params.BounceFactor
	if p.X < 0 {
		p.X = 0
		p.VX = -p.VX * bounce
	}
	if p.X > width {
		p.X = width
		p.VX = -p.VX * bounce
	}
	if p.Y < 0 {
		p.Y = 0
		p.VY = -p.VY * bounce
	}
	if p.Y > height {
		p.Y = height
		p.VY = -p.VY * bounce
	}
}

// Push every other point within RepulsionRadius away from the source point.
// The impulse falls off linearly from RepulsionStrength at zero distance to
// nothing at the radius. Points sitting exactly on the source are left alone,
// since there is no direction to push them in.
//
// Returns the number of points that received an impulse.
func (ph *Physics) Repel(store *Store, source PointID) int {
	src, ok := store.Get(source)
	if !ok {
		return 0
	}
	radius := ph.Params.RepulsionRadius
	srcX, srcY := src.X, src.Y
	pushed := 0
	store.Each(func(p *Point) {
		if p.ID == source {
			return
		}
		dx := p.X - srcX
		dy := p.Y - srcY
		distSq := dx*dx + dy*dy
		if distSq <= 0 || distSq >= radius*radius {
			return
		}
		dist := math.Sqrt(distSq)
		force := ph.Params.RepulsionStrength * (1 - dist/radius)
		p.VX += dx / dist * force
		p.VY += dy / dist * force
		pushed++
	})
	return pushed
}
