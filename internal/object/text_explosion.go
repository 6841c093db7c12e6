package object

import (
	"math"
	"math/rand"
)

const (
	textExplosionFade    = 0.025 // Alpha decrease per tick
	textExplosionGravity = 0.05
)

// charDebris is one flying character of a destroyed word.
type charDebris struct {
	ch     byte
	x, y   float64
	vx, vy float64
}

// TextExplosion scatters the characters of a destroyed word from its death
// position. Terminal once alpha reaches zero.
type TextExplosion struct {
	Alpha float64
	chars []charDebris
}

// NewTextExplosion seeds one debris glyph per character of word at (x, y).
func NewTextExplosion(rng *rand.Rand, word string, x, y float64) *TextExplosion {
	chars := make([]charDebris, len(word))
	for i := range word {
		angle := rng.Float64() * 2 * math.Pi
		speed := 0.8 + rng.Float64()*1.5
		chars[i] = charDebris{
			ch: word[i],
			x:  x + float64(i-len(word)/2)*2,
			y:  y,
			vx: math.Cos(angle) * speed,
			vy: math.Sin(angle)*speed - 0.8,
		}
	}
	return &TextExplosion{Alpha: 1.0, chars: chars}
}

// Update integrates debris under gravity and fades the whole burst.
func (t *TextExplosion) Update(ctx UpdateContext) {
	for i := range t.chars {
		c := &t.chars[i]
		c.x += c.vx
		c.y += c.vy
		c.vy += textExplosionGravity
	}
	t.Alpha -= textExplosionFade
}

// Done reports whether the burst has fully faded.
func (t *TextExplosion) Done() bool {
	return t.Alpha <= 0
}

// Draw renders the surviving debris characters. The burst drops glyphs as it
// fades so it thins out rather than vanishing at once.
func (t *TextExplosion) Draw(ctx DrawContext) {
	if t.Alpha <= 0 {
		return
	}
	visible := int(math.Ceil(t.Alpha * float64(len(t.chars))))
	for i := 0; i < visible && i < len(t.chars); i++ {
		c := t.chars[i]
		p := Project(ctx.World, c.x+ctx.ShakeX, c.y+ctx.ShakeY)
		col, row := ctx.Canvas.LogicalToTerminal(p.X, p.Y)
		if col < 1 || row < 1 {
			continue
		}
		ctx.Writer.WriteAt(col, row, debrisStyle.Render(string(c.ch)))
	}
}
