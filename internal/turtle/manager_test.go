package turtle

import (
	"testing"
	"time"
)

// scripted completes after a fixed number of steps and records the start
// times it was given.
type scripted struct {
	name   string
	steps  int
	starts []time.Time
	log    *[]string
}

func (s *scripted) Step(start, _ time.Time) Status {
	s.starts = append(s.starts, start)
	*s.log = append(*s.log, s.name)
	s.steps--
	if s.steps <= 0 {
		return Completed
	}
	return Pending
}

func TestManagerFIFO(t *testing.T) {
	var log []string
	m := NewCommandManager()
	a := &scripted{name: "a", steps: 2, log: &log}
	b := &scripted{name: "b", steps: 1, log: &log}
	c := &scripted{name: "c", steps: 3, log: &log}
	m.Enqueue(a)
	m.Enqueue(b)
	m.Enqueue(c)

	if m.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", m.Len())
	}

	now := t0
	for i := 0; i < 10; i++ {
		m.Tick(now)
		now = now.Add(time.Second)
	}

	expected := []string{"a", "a", "b", "c", "c", "c"}
	if len(log) != len(expected) {
		t.Fatalf("log = %v, expected %v", log, expected)
	}
	for i := range expected {
		if log[i] != expected[i] {
			t.Errorf("log[%d] = %q, expected %q", i, log[i], expected[i])
		}
	}
	if !m.Idle() {
		t.Error("manager should be idle")
	}
}

func TestManagerAnchorsEachHead(t *testing.T) {
	var log []string
	m := NewCommandManager()
	a := &scripted{name: "a", steps: 2, log: &log}
	b := &scripted{name: "b", steps: 2, log: &log}
	m.Enqueue(a)
	m.Enqueue(b)

	m.Tick(t0)
	m.Tick(t0.Add(time.Second))
	m.Tick(t0.Add(5 * time.Second))
	m.Tick(t0.Add(6 * time.Second))

	for _, s := range a.starts {
		if !s.Equal(t0) {
			t.Errorf("a started at %v, expected %v", s, t0)
		}
	}
	for _, s := range b.starts {
		if !s.Equal(t0.Add(5 * time.Second)) {
			t.Errorf("b started at %v, expected re-anchor at +5s", s)
		}
	}
}

func TestManagerEmptyTickAndUndo(t *testing.T) {
	m := NewCommandManager()
	m.Tick(t0)
	m.Advance()

	if _, ok := m.PopUndo(); ok {
		t.Error("PopUndo() on empty stack returned ok")
	}
	if m.Undo(New(DefaultOptions())) {
		t.Error("Undo() on empty stack returned true")
	}
	m.Enqueue(nil)
	if !m.Idle() {
		t.Error("Enqueue(nil) should be ignored")
	}
}

func TestManagerUndoStackLIFO(t *testing.T) {
	m := NewCommandManager()
	m.PushUndo(goEntry(Pos(1, 1), DefaultPen()))
	m.PushUndo(rotateEntry(10, 5))

	if m.UndoDepth() != 2 {
		t.Fatalf("UndoDepth() = %d, expected 2", m.UndoDepth())
	}

	e, _ := m.PopUndo()
	if e.Kind != UndoRotate || e.Rotate.RestoreTo != 10 {
		t.Errorf("first pop = %+v, expected rotate entry", e)
	}
	e, _ = m.PopUndo()
	if e.Kind != UndoGo || e.Go.RestoreTo != Pos(1, 1) {
		t.Errorf("second pop = %+v, expected go entry", e)
	}
}

func TestUndoEntryString(t *testing.T) {
	tests := []struct {
		entry    UndoEntry
		expected string
	}{
		{goEntry(Pos(1, 2), DefaultPen()), "go from (1.0, 2.0)"},
		{rotateEntry(-90, 45), "turn +45.0 from 270.0"},
		{UndoEntry{}, "unknown"},
	}
	for _, tc := range tests {
		if got := tc.entry.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
