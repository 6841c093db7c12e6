package object

import (
	"math"

	"github.com/akindepraise5/gameidea/internal/draw"
)

const (
	playerSize   = 3.0
	playerAspect = 2.0 // Terminal cells are roughly 2:1 (height:width)
	playerTurn   = 0.2 // Easing factor toward the target angle per tick
)

// Player is the defending ship near the bottom of the world. Its position is
// fixed; only its facing angle changes, easing toward the locked target.
type Player struct {
	X, Y        float64
	Angle       float64 // Current facing, radians (0 = right, -π/2 = up)
	TargetAngle float64
}

// NewPlayer creates the ship at (x, y), pointing up.
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Angle:       -math.Pi / 2,
		TargetAngle: -math.Pi / 2,
	}
}

// AimAt sets the target facing angle toward a world position.
func (p *Player) AimAt(x, y float64) {
	p.TargetAngle = math.Atan2(y-p.Y, x-p.X)
}

// ResetAim returns the target facing to straight up.
func (p *Player) ResetAim() {
	p.TargetAngle = -math.Pi / 2
}

// Update eases the facing angle toward the target along the shortest arc.
func (p *Player) Update(ctx UpdateContext) {
	diff := p.TargetAngle - p.Angle
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	p.Angle += diff * playerTurn
}

// Draw renders the ship as a filled triangle pointing along its facing angle.
func (p *Player) Draw(ctx DrawContext) {
	noseAngle := p.Angle
	leftAngle := p.Angle + 2.5 // ~143 degrees off the nose
	rightAngle := p.Angle - 2.5

	x := p.X + ctx.ShakeX
	y := p.Y + ctx.ShakeY

	triangle := ctx.Canvas.BorrowPoints(3)
	triangle[0] = draw.Point{X: x + math.Cos(noseAngle)*playerSize*playerAspect, Y: y + math.Sin(noseAngle)*playerSize}
	triangle[1] = draw.Point{X: x + math.Cos(leftAngle)*playerSize*0.7*playerAspect, Y: y + math.Sin(leftAngle)*playerSize*0.7}
	triangle[2] = draw.Point{X: x + math.Cos(rightAngle)*playerSize*0.7*playerAspect, Y: y + math.Sin(rightAngle)*playerSize*0.7}

	ctx.Canvas.DrawPolygon(triangle, true)
}
