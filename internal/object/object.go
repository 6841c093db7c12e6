// Package object contains the game's entity types. Each entity holds its own
// state and knows how to advance it one logic tick and draw itself; ownership
// of all collections stays with the game manager.
package object

import (
	"math/rand"

	"github.com/akindepraise5/gameidea/internal/draw"
)

// World describes the logical simulation space. Entities move in world
// coordinates; the perspective projector maps them to screen space at draw
// time.
type World struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the world.
func (w World) CenterX() float64 {
	return w.Width / 2
}

// TargetResolver resolves weak enemy references by ID. A destroyed or expired
// enemy simply stops resolving, so holders of stale IDs degrade gracefully
// instead of dangling.
type TargetResolver interface {
	EnemyPosition(id int) (x, y float64, ok bool)
}

// UpdateContext provides everything an entity needs during one logic tick.
type UpdateContext struct {
	World   World
	Wave    int
	Rand    *rand.Rand
	Targets TargetResolver
}

// DrawContext provides drawing resources for entities.
// Shapes go on the Canvas; characters (words, debris) go through the Writer.
type DrawContext struct {
	Canvas *draw.Canvas
	Writer *draw.ChunkWriter
	World  World

	// Screen shake offset for this frame, in logical units.
	ShakeX float64
	ShakeY float64
}

// Effect is a transient visual advancing toward a terminal condition.
// The manager polls Done every tick and prunes terminal effects.
type Effect interface {
	Update(ctx UpdateContext)
	Draw(ctx DrawContext)
	Done() bool
}
