package turtle

import "fmt"

// UndoKind tags which operation an UndoEntry reverses.
type UndoKind int

const (
	UndoGo     UndoKind = iota + 1 // A goto (forward, backward, goto, home)
	UndoRotate                     // A rotation (left, right, setheading)
)

// String returns a human-readable name for the kind.
func (k UndoKind) String() string {
	switch k {
	case UndoGo:
		return "Go"
	case UndoRotate:
		return "Rotate"
	default:
		return "Unknown"
	}
}

// GoUndo holds what is needed to reverse a goto.
type GoUndo struct {
	RestoreTo Position // Logical position before the call
	Pen       Pen      // Pen snapshot the call was issued with
}

// RotateUndo holds what is needed to reverse a rotation.
type RotateUndo struct {
	RestoreTo float64 // Logical heading before the call
	Delta     float64 // Signed change the call applied
}

// UndoEntry is a tagged record of one reversible call.
// Exactly one payload is set, matching Kind.
type UndoEntry struct {
	Kind   UndoKind
	Go     *GoUndo
	Rotate *RotateUndo
}

func goEntry(restoreTo Position, pen Pen) UndoEntry {
	return UndoEntry{Kind: UndoGo, Go: &GoUndo{RestoreTo: restoreTo, Pen: pen}}
}

func rotateEntry(restoreTo, delta float64) UndoEntry {
	return UndoEntry{Kind: UndoRotate, Rotate: &RotateUndo{RestoreTo: restoreTo, Delta: delta}}
}

// String describes the entry for history listings.
func (e UndoEntry) String() string {
	switch e.Kind {
	case UndoGo:
		return fmt.Sprintf("go from (%.1f, %.1f)", e.Go.RestoreTo.X, e.Go.RestoreTo.Y)
	case UndoRotate:
		return fmt.Sprintf("turn %+.1f from %.1f", e.Rotate.Delta, Normalize(e.Rotate.RestoreTo))
	default:
		return "unknown"
	}
}

// undoGo restores the logical position and queues the retraction of the
// line (if one was drawn) followed by the walk back.
func (t *Turtle) undoGo(u *GoUndo) {
	from := t.next
	t.next = u.RestoreTo

	t.commands.Enqueue(&retractCommand{t: t, pen: u.Pen})
	t.commands.Enqueue(&returnCommand{
		t:     t,
		from:  from,
		to:    u.RestoreTo,
		pen:   u.Pen,
		delay: t.delay,
	})
}

// undoRotate restores the logical heading and queues the turn back.
func (t *Turtle) undoRotate(u *RotateUndo) {
	from := t.nextAngle
	t.nextAngle = u.RestoreTo

	t.commands.Enqueue(&rotateCommand{
		t:     t,
		from:  from,
		to:    u.RestoreTo,
		delay: t.delay,
	})
}

// Undo reverses the most recent call that has not been undone yet, even if its
// animation is still running. Returns false when the history is empty.
func (t *Turtle) Undo() bool {
	return t.commands.Undo(t)
}
