package turtle

import "time"

// CommandManager owns the FIFO command queue and the LIFO undo stack.
// Only the head of the queue runs; it is re-anchored in time whenever the
// queue advances.
type CommandManager struct {
	queue    []Command
	undo     []UndoEntry
	anchor   time.Time
	anchored bool
}

// NewCommandManager creates an empty manager.
func NewCommandManager() *CommandManager {
	return &CommandManager{}
}

// Enqueue appends cmd to the tail of the queue.
func (m *CommandManager) Enqueue(cmd Command) {
	if cmd == nil {
		return
	}
	m.queue = append(m.queue, cmd)
}

// Advance drops the head command. The next tick anchors the new head.
func (m *CommandManager) Advance() {
	if len(m.queue) == 0 {
		return
	}
	m.queue[0] = nil
	m.queue = m.queue[1:]
	m.anchored = false
}

// Tick steps the head command with the time elapsed since it started.
// Empty queues are a no-op.
func (m *CommandManager) Tick(now time.Time) {
	if len(m.queue) == 0 {
		return
	}
	if !m.anchored {
		m.anchor = now
		m.anchored = true
	}
	if m.queue[0].Step(m.anchor, now) == Completed {
		m.Advance()
	}
}

// Len returns the number of queued commands, including the running one.
func (m *CommandManager) Len() int {
	return len(m.queue)
}

// Idle reports whether no command is queued.
func (m *CommandManager) Idle() bool {
	return len(m.queue) == 0
}

// PushUndo records an entry on top of the undo stack.
func (m *CommandManager) PushUndo(e UndoEntry) {
	m.undo = append(m.undo, e)
}

// PopUndo removes and returns the most recent entry.
func (m *CommandManager) PopUndo() (UndoEntry, bool) {
	if len(m.undo) == 0 {
		return UndoEntry{}, false
	}
	e := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	return e, true
}

// UndoDepth returns how many calls can still be undone.
func (m *CommandManager) UndoDepth() int {
	return len(m.undo)
}

// History returns the undo stack, oldest first.
func (m *CommandManager) History() []UndoEntry {
	out := make([]UndoEntry, len(m.undo))
	copy(out, m.undo)
	return out
}

// Undo pops the most recent entry and replays its compensation on t.
// Returns false when there was nothing to undo.
func (m *CommandManager) Undo(t *Turtle) bool {
	e, ok := m.PopUndo()
	if !ok {
		return false
	}
	switch e.Kind {
	case UndoGo:
		t.undoGo(e.Go)
	case UndoRotate:
		t.undoRotate(e.Rotate)
	}
	return true
}

// Clear drops every queued command and undo entry.
func (m *CommandManager) Clear() {
	m.queue = nil
	m.undo = nil
	m.anchored = false
}
