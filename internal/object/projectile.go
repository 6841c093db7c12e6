package object

import (
	"math"

	"github.com/akindepraise5/gameidea/internal/draw"
	"github.com/akindepraise5/gameidea/internal/physics"
)

const (
	// ProjectileSpeed is the distance covered per logic tick.
	ProjectileSpeed = 4.0

	// HitThreshold is how close a projectile must get to its target to count
	// as a hit.
	HitThreshold = 2.0

	// TrailLength bounds the trail buffer; the oldest position is evicted
	// once it fills.
	TrailLength = 8
)

// Projectile is a homing bolt fired at an enemy on a successful keystroke.
// It re-aims at the target's live position every tick (pure pursuit). The
// target is a weak reference: if the enemy is gone the projectile silently
// deactivates.
type Projectile struct {
	X, Y     float64
	TargetID int
	Active   bool

	trail []draw.Point
}

// NewProjectile creates an active projectile at (x, y) homing on the enemy
// with the given ID.
func NewProjectile(x, y float64, targetID int) *Projectile {
	return &Projectile{
		X:        x,
		Y:        y,
		TargetID: targetID,
		Active:   true,
		trail:    make([]draw.Point, 0, TrailLength),
	}
}

// Update advances the projectile one tick. Returns true exactly once, on the
// tick the projectile reaches its target. The hit is informational: the enemy
// was already resolved at the keystroke, the projectile is the visual.
func (p *Projectile) Update(ctx UpdateContext) (hit bool) {
	if !p.Active {
		return false
	}

	tx, ty, ok := ctx.Targets.EnemyPosition(p.TargetID)
	if !ok {
		// Target destroyed or expired mid-flight
		p.Active = false
		return false
	}

	bearing := math.Atan2(ty-p.Y, tx-p.X)
	p.X += math.Cos(bearing) * ProjectileSpeed
	p.Y += math.Sin(bearing) * ProjectileSpeed
	p.pushTrail()

	if physics.WithinRange(p.X, p.Y, tx, ty, HitThreshold) {
		p.Active = false
		return true
	}
	return false
}

// pushTrail appends the current position, evicting the oldest past TrailLength.
func (p *Projectile) pushTrail() {
	if len(p.trail) == TrailLength {
		copy(p.trail, p.trail[1:])
		p.trail[TrailLength-1] = draw.Point{X: p.X, Y: p.Y}
		return
	}
	p.trail = append(p.trail, draw.Point{X: p.X, Y: p.Y})
}

// Trail returns the recent positions, oldest first.
func (p *Projectile) Trail() []draw.Point {
	return p.trail
}

// Draw renders the projectile head and its trail on the canvas.
func (p *Projectile) Draw(ctx DrawContext) {
	if !p.Active {
		return
	}

	for _, t := range p.trail {
		tp := Project(ctx.World, t.X+ctx.ShakeX, t.Y+ctx.ShakeY)
		ctx.Canvas.SetFloat(tp.X, tp.Y)
	}

	hp := Project(ctx.World, p.X+ctx.ShakeX, p.Y+ctx.ShakeY)
	ctx.Canvas.SetFloat(hp.X, hp.Y)
	ctx.Canvas.SetFloat(hp.X+1, hp.Y)
}
