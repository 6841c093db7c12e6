package object

// BaseScale is the projection scale at the horizon (y = 0). Objects shrink
// toward this as they get further away.
const BaseScale = 0.6

// Projected is a world position mapped to screen space.
type Projected struct {
	X     float64
	Y     float64
	Scale float64
}

// Project maps a world-space position to screen space using a pseudo-3D depth
// model: depth runs from 0 at the top (far) to 1 at the bottom (near), scale
// falls off quadratically with distance, and x is pulled toward the horizon
// center. y passes through unchanged. Called for every visible entity every
// frame, so it must stay allocation-free.
func Project(w World, x, y float64) Projected {
	depth := y / w.Height
	scale := BaseScale + (1-BaseScale)*depth*depth
	cx := w.CenterX()
	return Projected{
		X:     cx + (x-cx)*scale,
		Y:     y,
		Scale: scale,
	}
}
