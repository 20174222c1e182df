// Package turtle implements the animated turtle engine: a cursor whose logical
// state changes immediately on every call while its visual state catches up
// through a FIFO queue of time-parameterised commands.
//
// The package has no terminal or image dependencies. A platform layer feeds it
// timestamps through Tick and draws it through a Renderer.
package turtle

// Position is a point on the canvas. Y grows downward, matching screen space.
type Position struct {
	X, Y float64
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Add returns p + o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale returns p multiplied by k.
func (p Position) Scale(k float64) Position {
	return Position{X: p.X * k, Y: p.Y * k}
}

// Lerp interpolates linearly between from and to. t is not clamped.
func Lerp(from, to Position, t float64) Position {
	return from.Add(to.Sub(from).Scale(t))
}
