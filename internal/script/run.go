package script

import (
	"time"

	"github.com/vovakirdan/tui-turtle/internal/core"
)

// MaxSteps bounds how many statements a single Run may execute.
const MaxSteps = 100000

// Target is the turtle surface a script drives. *turtle.Turtle satisfies it.
type Target interface {
	Forward(distance float64)
	Backward(distance float64)
	Left(angle float64)
	Right(angle float64)
	SetHeading(angle float64)
	Goto(x, y float64)
	Towards(x, y float64) float64
	Home()
	PenUp()
	PenDown()
	SetColor(c core.Color)
	SetPenSize(size float64)
	SetDelay(d time.Duration)
	Undo() bool
	Reset()
}

// Exec parses and runs src.
func Exec(t Target, src string) error {
	stmts, err := Parse(src)
	if err != nil {
		return err
	}
	return Run(t, stmts)
}

// Run executes stmts in order. Statements before a failing one have already
// been applied to t.
func Run(t Target, stmts []Stmt) error {
	budget := MaxSteps
	return run(t, stmts, &budget)
}

func run(t Target, stmts []Stmt, budget *int) error {
	for _, s := range stmts {
		*budget--
		if *budget < 0 {
			return &Error{Line: s.Line, Col: s.Col, Err: ErrLimit, Msg: "too many steps"}
		}

		switch s.Op {
		case OpForward:
			t.Forward(s.Args[0])
		case OpBackward:
			t.Backward(s.Args[0])
		case OpLeft:
			t.Left(s.Args[0])
		case OpRight:
			t.Right(s.Args[0])
		case OpSetHeading:
			t.SetHeading(s.Args[0])
		case OpGoto:
			t.Goto(s.Args[0], s.Args[1])
		case OpFace:
			t.SetHeading(t.Towards(s.Args[0], s.Args[1]))
		case OpHome:
			t.Home()
		case OpPenUp:
			t.PenUp()
		case OpPenDown:
			t.PenDown()
		case OpColor:
			c, ok := core.ParseColor(s.Name)
			if !ok {
				return &Error{Line: s.Line, Col: s.Col, Err: ErrArgument, Msg: "unknown color " + s.Name}
			}
			t.SetColor(c)
		case OpWidth:
			t.SetPenSize(s.Args[0])
		case OpDelay:
			t.SetDelay(time.Duration(s.Args[0] * float64(time.Millisecond)))
		case OpUndo:
			n := 1
			if len(s.Args) > 0 {
				n = int(s.Args[0])
			}
			for i := 0; i < n; i++ {
				if !t.Undo() {
					break
				}
			}
		case OpReset:
			t.Reset()
		case OpRepeat:
			for i := 0; i < int(s.Args[0]); i++ {
				*budget--
				if *budget < 0 {
					return &Error{Line: s.Line, Col: s.Col, Err: ErrLimit, Msg: "too many steps"}
				}
				if err := run(t, s.Body, budget); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
