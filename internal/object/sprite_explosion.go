package object

// spriteFrames is the fixed animation sequence. Terminal once the last frame
// has been shown for spriteFrameTicks.
var spriteFrames = []string{"✦", "✶", "✺", "✹", "✸", "·"}

// spriteFrameTicks is how many logic ticks each frame is held.
const spriteFrameTicks = 3

// SpriteExplosion is a frame-animated burst at an enemy's death position.
type SpriteExplosion struct {
	X, Y  float64
	frame int
	ticks int
}

// NewSpriteExplosion creates the animation at (x, y).
func NewSpriteExplosion(x, y float64) *SpriteExplosion {
	return &SpriteExplosion{X: x, Y: y}
}

// Update advances the animation clock.
func (s *SpriteExplosion) Update(ctx UpdateContext) {
	s.ticks++
	if s.ticks >= spriteFrameTicks {
		s.ticks = 0
		s.frame++
	}
}

// Done reports whether the frame sequence is exhausted.
func (s *SpriteExplosion) Done() bool {
	return s.frame >= len(spriteFrames)
}

// Frame returns the current animation frame index.
func (s *SpriteExplosion) Frame() int {
	return s.frame
}

// Draw renders the current frame at the projected position.
func (s *SpriteExplosion) Draw(ctx DrawContext) {
	if s.Done() {
		return
	}
	p := Project(ctx.World, s.X+ctx.ShakeX, s.Y+ctx.ShakeY)
	col, row := ctx.Canvas.LogicalToTerminal(p.X, p.Y)
	if col < 1 || row < 1 {
		return
	}
	ctx.Writer.WriteAt(col, row, spriteStyle.Render(spriteFrames[s.frame]))
}
