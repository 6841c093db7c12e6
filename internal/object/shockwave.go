package object

const (
	shockwaveGrowth = 1.4  // Radius growth per tick
	shockwaveFade   = 0.04 // Alpha decrease per tick
	shockwaveAspect = 2.0  // Horizontal stretch for terminal cell shape
)

// Shockwave is an expanding ring emitted at an enemy's death position.
// Terminal once alpha reaches zero.
type Shockwave struct {
	X, Y   float64
	Radius float64
	Alpha  float64
}

// NewShockwave creates a shockwave centered at (x, y).
func NewShockwave(x, y float64) *Shockwave {
	return &Shockwave{X: x, Y: y, Radius: 1.0, Alpha: 1.0}
}

// Update expands the ring and fades it.
func (s *Shockwave) Update(ctx UpdateContext) {
	s.Radius += shockwaveGrowth
	s.Alpha -= shockwaveFade
}

// Done reports whether the shockwave has fully faded.
func (s *Shockwave) Done() bool {
	return s.Alpha <= 0
}

// Draw renders the ring on the canvas, scaled by projection depth.
func (s *Shockwave) Draw(ctx DrawContext) {
	if s.Alpha <= 0 {
		return
	}
	p := Project(ctx.World, s.X+ctx.ShakeX, s.Y+ctx.ShakeY)
	ctx.Canvas.DrawCircle(p.X, p.Y, s.Radius*p.Scale, shockwaveAspect)
}
