package turtle

import "math"

// Forward moves along the logical heading by distance.
// Negative distances move backward.
func (t *Turtle) Forward(distance float64) {
	rad := t.nextAngle * math.Pi / 180
	dx := math.Cos(rad) * distance
	dy := -math.Sin(rad) * distance // screen y grows downward
	t.Goto(t.next.X+dx, t.next.Y+dy)
}

// Backward moves against the logical heading by distance.
func (t *Turtle) Backward(distance float64) {
	t.Forward(-distance)
}

// Goto moves to the absolute canvas position (x, y), drawing a line if the
// pen is down. The logical position changes immediately; the cursor follows
// over the current delay.
func (t *Turtle) Goto(x, y float64) {
	prior := t.next
	t.next = Pos(x, y)
	pen := t.pen.Copy()

	t.commands.PushUndo(goEntry(prior, pen))
	t.commands.Enqueue(&moveCommand{
		t:     t,
		from:  prior,
		to:    t.next,
		pen:   pen,
		delay: t.delay,
	})
}

// Home moves back to the canvas center and faces east. It records two undo
// entries, the turn and the move, so undoing it fully takes two Undo calls.
func (t *Turtle) Home() {
	c := t.Center()
	t.Goto(c.X, c.Y)
	t.SetHeading(0)
}

// Left turns counter-clockwise by angle degrees.
func (t *Turtle) Left(angle float64) {
	t.rotate(t.nextAngle + angle)
}

// Right turns clockwise by angle degrees.
func (t *Turtle) Right(angle float64) {
	t.Left(-angle)
}

// SetHeading turns to the absolute heading angle (degrees, counter-clockwise,
// 0 = east) the short way round.
func (t *Turtle) SetHeading(angle float64) {
	t.Left(Turn(t.nextAngle, angle))
}

// Towards returns the heading from the logical position to (x, y).
// It does not change any state.
func (t *Turtle) Towards(x, y float64) float64 {
	dx := x - t.next.X
	dy := t.next.Y - y
	return Normalize(math.Atan2(dy, dx) * 180 / math.Pi)
}

// rotate commits a new logical heading and queues the turn animation.
func (t *Turtle) rotate(to float64) {
	prior := t.nextAngle
	t.nextAngle = to

	t.commands.PushUndo(rotateEntry(prior, to-prior))
	t.commands.Enqueue(&rotateCommand{
		t:     t,
		from:  prior,
		to:    to,
		delay: t.delay,
	})
}

// Normalize maps an angle in degrees into [0, 360).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	if a == 360 { // -tiny + 360 rounds up
		a = 0
	}
	return a
}

// Turn returns the signed turn in (-180, 180] that brings heading from onto to.
func Turn(from, to float64) float64 {
	d := Normalize(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}
