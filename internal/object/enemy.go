package object

// WaveSpeedFactor is the per-wave descent speed multiplier: speed scales by
// 1 + wave*WaveSpeedFactor.
const WaveSpeedFactor = 0.1

// Enemy is a falling word. The player destroys it by typing it; it damages
// the ship if it reaches the bottom of the world first.
type Enemy struct {
	ID      int     // Stable handle for weak references (lock, projectiles)
	Word    string  // Immutable, uppercase
	Matched int     // Count of confirmed prefix characters, 0..len(Word)
	X, Y    float64 // World position (word center)
	Speed   float64 // Base descent per tick, before wave scaling
	Locked  bool

	destroyed bool
}

// NewEnemy creates an enemy with the given word, entering at (x, y).
func NewEnemy(id int, word string, x, y, speed float64) *Enemy {
	return &Enemy{
		ID:    id,
		Word:  word,
		X:     x,
		Y:     y,
		Speed: speed,
	}
}

// Update advances the descent by one logic tick, scaled by the current wave.
func (e *Enemy) Update(ctx UpdateContext) {
	e.Y += e.Speed * (1 + float64(ctx.Wave)*WaveSpeedFactor)
}

// ReachedBottom reports whether the enemy has fallen past the world's bottom
// edge.
func (e *Enemy) ReachedBottom(w World) bool {
	return e.Y > w.Height
}

// FullyMatched reports whether every character of the word has been typed.
func (e *Enemy) FullyMatched() bool {
	return e.Matched >= len(e.Word)
}

// NextChar returns the next character the player must type.
// Only valid while FullyMatched is false.
func (e *Enemy) NextChar() byte {
	return e.Word[e.Matched]
}

// MarkDestroyed flags the enemy for removal on the next prune pass.
func (e *Enemy) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the enemy is flagged for removal.
func (e *Enemy) IsDestroyed() bool {
	return e.destroyed
}

// Draw renders the word centered on the enemy's projected position. The typed
// prefix, the distance band and the lock state each style their part.
func (e *Enemy) Draw(ctx DrawContext) {
	p := Project(ctx.World, e.X+ctx.ShakeX, e.Y+ctx.ShakeY)
	col, row := ctx.Canvas.LogicalToTerminal(p.X, p.Y)
	col -= len(e.Word) / 2
	if row < 1 {
		return // Still above the visible area
	}

	matched := e.Word[:e.Matched]
	rest := e.Word[e.Matched:]

	ctx.Writer.MoveCursor(col, row)
	if e.Locked {
		if matched != "" {
			ctx.Writer.WriteString(matchedStyle.Render(matched))
		}
		ctx.Writer.WriteString(lockedStyle.Render(rest))
		// Aim caret under the next expected character
		ctx.Writer.WriteAt(col+e.Matched, row+1, lockedStyle.Render("^"))
		return
	}

	if matched != "" {
		ctx.Writer.WriteString(matchedStyle.Render(matched))
	}
	ctx.Writer.WriteString(wordStyle(p.Scale).Render(rest))
}
