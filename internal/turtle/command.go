package turtle

import "time"

// Status is what a Command reports after each step.
type Status int

const (
	Pending   Status = iota // Still animating; stay at the head of the queue
	Completed               // Done; the manager advances to the next command
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Command is one queued animation step. start is when the command became the
// head of the queue and now is the current tick.
type Command interface {
	Step(start, now time.Time) Status
}

// progress returns the clamped fraction of delay elapsed between start and now,
// and whether the animation is finished. A zero delay finishes immediately.
func progress(start, now time.Time, delay time.Duration) (float64, bool) {
	elapsed := now.Sub(start)
	if delay <= 0 || elapsed >= delay {
		return 1, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return float64(elapsed) / float64(delay), false
}

// moveCommand animates the visual position along a goto and persists the
// finished line.
type moveCommand struct {
	t     *Turtle
	from  Position
	to    Position
	pen   Pen
	delay time.Duration
}

func (c *moveCommand) Step(start, now time.Time) Status {
	frac, done := progress(start, now, c.delay)
	if !done {
		c.t.position = Lerp(c.from, c.to, frac)
		stroke := NewLine(c.pen, c.from, c.t.position)
		c.t.stroke = &stroke
		return Pending
	}

	if c.pen.Drawing {
		c.t.lines = append(c.t.lines, NewLine(c.pen, c.from, c.to))
	}
	c.t.position = c.to
	c.t.stroke = nil
	return Completed
}

// rotateCommand animates the visual heading.
type rotateCommand struct {
	t     *Turtle
	from  float64
	to    float64
	delay time.Duration
}

func (c *rotateCommand) Step(start, now time.Time) Status {
	frac, done := progress(start, now, c.delay)
	if !done {
		c.t.angle = c.from + (c.to-c.from)*frac
		return Pending
	}
	c.t.angle = c.to
	return Completed
}

// retractCommand removes the line left by an undone goto.
type retractCommand struct {
	t   *Turtle
	pen Pen
}

func (c *retractCommand) Step(_, _ time.Time) Status {
	if c.pen.Drawing && len(c.t.lines) > 0 {
		c.t.lines = c.t.lines[:len(c.t.lines)-1]
	}
	return Completed
}

// returnCommand walks the cursor back over an undone goto. The retracted
// segment shrinks behind it while it moves and nothing is persisted.
type returnCommand struct {
	t     *Turtle
	from  Position
	to    Position
	pen   Pen
	delay time.Duration
}

func (c *returnCommand) Step(start, now time.Time) Status {
	frac, done := progress(start, now, c.delay)
	if !done {
		c.t.position = Lerp(c.from, c.to, frac)
		stroke := NewLine(c.pen, c.to, c.t.position)
		c.t.stroke = &stroke
		return Pending
	}
	c.t.position = c.to
	c.t.stroke = nil
	return Completed
}
