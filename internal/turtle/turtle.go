package turtle

import (
	"time"

	"github.com/vovakirdan/tui-turtle/internal/core"
)

// Default canvas size and animation delay.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
	DefaultDelay  = 500 * time.Millisecond
)

// Options configures a new Turtle.
type Options struct {
	Width  float64       // Canvas width; the turtle starts at its center
	Height float64       // Canvas height
	Delay  time.Duration // Animation time per command
	Pen    Pen           // Initial pen
}

// DefaultOptions returns an 800x800 canvas, 500ms animations and a drawing pen.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Delay:  DefaultDelay,
		Pen:    DefaultPen(),
	}
}

// Turtle is the animated cursor.
//
// Its logical state (Position, Heading) changes as soon as a call returns.
// Its visual state (VisualPosition, VisualHeading) is moved only by the
// command at the head of the queue, one Tick at a time. A Turtle is not safe
// for concurrent use; drive it from a single loop.
type Turtle struct {
	width  float64
	height float64

	next      Position // logical
	nextAngle float64
	position  Position // visual
	angle     float64

	pen    Pen
	lines  []Line
	stroke *Line

	delay    time.Duration
	longest  time.Duration
	lastTick time.Time

	commands *CommandManager
}

// New creates a turtle at the center of the canvas, facing east.
func New(opts Options) *Turtle {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}

	t := &Turtle{
		width:    opts.Width,
		height:   opts.Height,
		pen:      opts.Pen,
		delay:    opts.Delay,
		longest:  opts.Delay,
		commands: NewCommandManager(),
	}
	t.next = t.Center()
	t.position = t.next
	return t
}

// Reset returns the turtle to its initial state, dropping the drawing, the
// queue and the undo history. Pen and delay are kept.
func (t *Turtle) Reset() {
	t.commands.Clear()
	t.lines = nil
	t.stroke = nil
	t.next = t.Center()
	t.position = t.next
	t.nextAngle = 0
	t.angle = 0
}

// Tick drives the command at the head of the queue.
func (t *Turtle) Tick(now time.Time) {
	if now.After(t.lastTick) {
		t.lastTick = now
	}
	t.commands.Tick(now)
}

// Settle runs every queued command to completion on a synthetic clock that
// continues from the last Tick.
func (t *Turtle) Settle() {
	step := t.longest + time.Millisecond
	now := t.lastTick
	for !t.commands.Idle() {
		now = now.Add(step)
		t.Tick(now)
	}
}

// Size returns the canvas dimensions.
func (t *Turtle) Size() (width, height float64) {
	return t.width, t.height
}

// Center returns the middle of the canvas.
func (t *Turtle) Center() Position {
	return Pos(t.width/2, t.height/2)
}

// Position returns the logical position.
func (t *Turtle) Position() Position {
	return t.next
}

// Heading returns the logical heading in degrees, normalised to [0, 360).
func (t *Turtle) Heading() float64 {
	return Normalize(t.nextAngle)
}

// VisualPosition returns where the cursor is currently drawn.
func (t *Turtle) VisualPosition() Position {
	return t.position
}

// VisualHeading returns the heading the cursor is currently drawn with.
// It is not normalised so that it interpolates continuously.
func (t *Turtle) VisualHeading() float64 {
	return t.angle
}

// Pen returns a copy of the live pen.
func (t *Turtle) Pen() Pen {
	return t.pen.Copy()
}

// Lines returns a copy of the completed lines in completion order.
func (t *Turtle) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// Stroke returns the segment currently being animated, if any.
func (t *Turtle) Stroke() (Line, bool) {
	if t.stroke == nil {
		return Line{}, false
	}
	return *t.stroke, true
}

// Delay returns the animation time used for new commands.
func (t *Turtle) Delay() time.Duration {
	return t.delay
}

// SetDelay changes the animation time of commands issued from now on.
// Negative values are treated as zero.
func (t *Turtle) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.delay = d
	if d > t.longest {
		t.longest = d
	}
}

// Pending returns the number of queued commands.
func (t *Turtle) Pending() int {
	return t.commands.Len()
}

// Busy reports whether the visual state is still catching up.
func (t *Turtle) Busy() bool {
	return !t.commands.Idle()
}

// UndoDepth returns how many calls can be undone.
func (t *Turtle) UndoDepth() int {
	return t.commands.UndoDepth()
}

// History returns the undoable calls, oldest first.
func (t *Turtle) History() []UndoEntry {
	return t.commands.History()
}

// PenUp stops future movement from drawing.
func (t *Turtle) PenUp() {
	t.pen.Drawing = false
}

// PenDown makes future movement draw.
func (t *Turtle) PenDown() {
	t.pen.Drawing = true
}

// IsDown reports whether the live pen is drawing.
func (t *Turtle) IsDown() bool {
	return t.pen.Drawing
}

// SetColor changes the live pen color.
func (t *Turtle) SetColor(c core.Color) {
	t.pen.Color = c
}

// SetPenSize changes the live pen width. Non-positive sizes are ignored.
func (t *Turtle) SetPenSize(size float64) {
	if size <= 0 {
		return
	}
	t.pen.Size = size
}
