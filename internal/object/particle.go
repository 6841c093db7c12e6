package object

import (
	"math"
	"math/rand"

	"github.com/akindepraise5/gameidea/internal/draw"
)

// ParticleKind selects the initial velocity distribution, decay rate and
// rendering of a particle. The three kinds share one type: they differ only
// in parameters.
type ParticleKind int

const (
	ParticleSpark ParticleKind = iota
	ParticleFire
	ParticleSmoke
)

// Per-kind life decay per tick.
var particleDecay = map[ParticleKind]float64{
	ParticleSpark: 0.030,
	ParticleFire:  0.020,
	ParticleSmoke: 0.012,
}

// particleDamp is the multiplicative velocity damping applied each tick.
const particleDamp = 0.95

// Particle is a short-lived visual emitted on enemy destruction.
type Particle struct {
	Kind   ParticleKind
	X, Y   float64
	VX, VY float64
	Life   float64 // 1.0 at spawn, dead at <= 0
	Decay  float64
	Size   float64
}

// NewParticle creates a particle of the given kind at (x, y) with a random
// kind-specific velocity.
func NewParticle(rng *rand.Rand, kind ParticleKind, x, y float64) *Particle {
	p := &Particle{
		Kind:  kind,
		X:     x,
		Y:     y,
		Life:  1.0,
		Decay: particleDecay[kind],
		Size:  1.0,
	}

	switch kind {
	case ParticleSpark:
		// Fast omnidirectional burst
		angle := rng.Float64() * 2 * math.Pi
		speed := 1.5 + rng.Float64()*2.0
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle) * speed
	case ParticleFire:
		// Slower burst with upward bias
		angle := rng.Float64() * 2 * math.Pi
		speed := 0.5 + rng.Float64()*1.2
		p.VX = math.Cos(angle) * speed
		p.VY = math.Sin(angle)*speed - 0.4
	case ParticleSmoke:
		// Lazy drift upward
		p.VX = (rng.Float64() - 0.5) * 0.6
		p.VY = -0.3 - rng.Float64()*0.5
	}

	return p
}

// Update integrates velocity, damps it, decays life, and grows non-spark
// kinds. Returns true once the particle is dead.
func (p *Particle) Update(ctx UpdateContext) (dead bool) {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= particleDamp
	p.VY *= particleDamp
	p.Life -= p.Decay

	if p.Kind != ParticleSpark {
		p.Size += 0.05
	}

	return p.Life <= 0
}

// Draw renders the particle. Sparks are canvas pixels; fire and smoke are
// shaded characters that dim as they die.
func (p *Particle) Draw(ctx DrawContext) {
	if p.Life <= 0 {
		return
	}

	pr := Project(ctx.World, p.X+ctx.ShakeX, p.Y+ctx.ShakeY)

	if p.Kind == ParticleSpark {
		ctx.Canvas.SetFloat(pr.X, pr.Y)
		return
	}

	ch := draw.ShadeLevel(p.Life)
	if ch == ' ' {
		return
	}
	col, row := ctx.Canvas.LogicalToTerminal(pr.X, pr.Y)
	if col < 1 || row < 1 {
		return
	}
	style := fireStyle
	if p.Kind == ParticleSmoke {
		style = smokeStyle
	}
	ctx.Writer.WriteAt(col, row, style.Render(string(ch)))
}
