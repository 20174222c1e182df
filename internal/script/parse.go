// Package script implements a small Logo-style command language for driving
// a turtle:
//
//	fd 100; lt 90          # move and turn
//	repeat 4 [ fd 50 rt 90 ]
//	pu goto 10 10 pd color red width 2 delay 250
//	undo 2
//
// Parse turns source into statements; Run executes them against a Target.
package script

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-turtle/internal/core"
)

// Parser limits.
const (
	MaxDepth   = 64     // repeat nesting
	MaxDelayMS = 600000 // delay argument
)

// Op identifies a statement.
type Op int

const (
	OpForward Op = iota
	OpBackward
	OpLeft
	OpRight
	OpSetHeading
	OpGoto
	OpFace
	OpHome
	OpPenUp
	OpPenDown
	OpColor
	OpWidth
	OpDelay
	OpUndo
	OpReset
	OpRepeat
)

// String returns the canonical spelling of the op.
func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "unknown"
}

var opNames = map[Op]string{
	OpForward:    "forward",
	OpBackward:   "backward",
	OpLeft:       "left",
	OpRight:      "right",
	OpSetHeading: "setheading",
	OpGoto:       "goto",
	OpFace:       "face",
	OpHome:       "home",
	OpPenUp:      "penup",
	OpPenDown:    "pendown",
	OpColor:      "color",
	OpWidth:      "width",
	OpDelay:      "delay",
	OpUndo:       "undo",
	OpReset:      "reset",
	OpRepeat:     "repeat",
}

// signature describes how a command word parses.
type signature struct {
	op      Op
	numbers int  // Required numeric arguments
	name    bool // Takes a single word argument instead
	opt     bool // Numeric argument is optional (undo)
}

var commands = map[string]signature{
	"fd":         {op: OpForward, numbers: 1},
	"forward":    {op: OpForward, numbers: 1},
	"bk":         {op: OpBackward, numbers: 1},
	"back":       {op: OpBackward, numbers: 1},
	"backward":   {op: OpBackward, numbers: 1},
	"lt":         {op: OpLeft, numbers: 1},
	"left":       {op: OpLeft, numbers: 1},
	"rt":         {op: OpRight, numbers: 1},
	"right":      {op: OpRight, numbers: 1},
	"seth":       {op: OpSetHeading, numbers: 1},
	"setheading": {op: OpSetHeading, numbers: 1},
	"goto":       {op: OpGoto, numbers: 2},
	"setpos":     {op: OpGoto, numbers: 2},
	"face":       {op: OpFace, numbers: 2},
	"home":       {op: OpHome},
	"pu":         {op: OpPenUp},
	"penup":      {op: OpPenUp},
	"pd":         {op: OpPenDown},
	"pendown":    {op: OpPenDown},
	"color":      {op: OpColor, name: true},
	"pencolor":   {op: OpColor, name: true},
	"width":      {op: OpWidth, numbers: 1},
	"pensize":    {op: OpWidth, numbers: 1},
	"delay":      {op: OpDelay, numbers: 1},
	"undo":       {op: OpUndo, numbers: 1, opt: true},
	"reset":      {op: OpReset},
	"clear":      {op: OpReset},
	"repeat":     {op: OpRepeat, numbers: 1},
}

// Stmt is one parsed statement.
type Stmt struct {
	Op   Op
	Args []float64
	Name string // Word argument (color)
	Body []Stmt // Repeat body
	Line int
	Col  int
}

// Parse parses src into a statement list.
func Parse(src string) ([]Stmt, error) {
	p := &parser{toks: lex(src)}
	stmts, err := p.block(0)
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, errorAt(tok, ErrUnbalanced, "unexpected %q", tok.text)
	}
	return stmts, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

// block parses statements until EOF or a closing bracket, which is left
// unconsumed.
func (p *parser) block(depth int) ([]Stmt, error) {
	var stmts []Stmt
	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF, tokClose:
			return stmts, nil
		case tokOpen:
			return nil, errorAt(tok, ErrSyntax, "unexpected '['")
		}

		stmt, err := p.stmt(depth)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *parser) stmt(depth int) (Stmt, error) {
	tok := p.next()
	word := strings.ToLower(tok.text)
	sp, ok := commands[word]
	if !ok {
		return Stmt{}, errorAt(tok, ErrUnknownCommand, "%q", tok.text)
	}

	stmt := Stmt{Op: sp.op, Line: tok.line, Col: tok.col}

	if sp.name {
		arg := p.next()
		if arg.kind != tokWord {
			return Stmt{}, errorAt(arg, ErrArgument, "%s expects a name", word)
		}
		if _, ok := core.ParseColor(arg.text); !ok {
			return Stmt{}, errorAt(arg, ErrArgument, "unknown color %s", arg.text)
		}
		stmt.Name = arg.text
		return stmt, nil
	}

	for i := 0; i < sp.numbers; i++ {
		arg := p.peek()
		if sp.opt && (arg.kind != tokWord || !looksNumeric(arg.text)) {
			break
		}
		n, err := p.number(word)
		if err != nil {
			return Stmt{}, err
		}
		stmt.Args = append(stmt.Args, n)
	}

	switch sp.op {
	case OpRepeat:
		return p.repeat(stmt, tok, depth)
	case OpDelay, OpUndo:
		if len(stmt.Args) > 0 && (stmt.Args[0] < 0 || stmt.Args[0] != math.Trunc(stmt.Args[0])) {
			return Stmt{}, errorAt(tok, ErrArgument, "%s expects a non-negative integer", word)
		}
		if sp.op == OpDelay && stmt.Args[0] > MaxDelayMS {
			return Stmt{}, errorAt(tok, ErrArgument, "delay above %dms", MaxDelayMS)
		}
		if sp.op == OpUndo && len(stmt.Args) > 0 && stmt.Args[0] > MaxSteps {
			return Stmt{}, errorAt(tok, ErrLimit, "undo count above %d", MaxSteps)
		}
	case OpWidth:
		if stmt.Args[0] <= 0 {
			return Stmt{}, errorAt(tok, ErrArgument, "width must be positive")
		}
	}
	return stmt, nil
}

func (p *parser) repeat(stmt Stmt, tok token, depth int) (Stmt, error) {
	count := stmt.Args[0]
	if count < 0 || count != math.Trunc(count) {
		return Stmt{}, errorAt(tok, ErrArgument, "repeat count must be a non-negative integer")
	}
	if count > MaxSteps {
		return Stmt{}, errorAt(tok, ErrLimit, "repeat count above %d", MaxSteps)
	}
	if depth+1 > MaxDepth {
		return Stmt{}, errorAt(tok, ErrLimit, "repeat nested deeper than %d", MaxDepth)
	}

	open := p.next()
	if open.kind != tokOpen {
		return Stmt{}, errorAt(open, ErrSyntax, "repeat expects '['")
	}
	body, err := p.block(depth + 1)
	if err != nil {
		return Stmt{}, err
	}
	if closing := p.next(); closing.kind != tokClose {
		return Stmt{}, errorAt(open, ErrUnbalanced, "missing ']'")
	}

	stmt.Body = body
	return stmt, nil
}

func (p *parser) number(cmd string) (float64, error) {
	tok := p.next()
	if tok.kind != tokWord {
		return 0, errorAt(tok, ErrArgument, "%s expects a number", cmd)
	}
	n, err := strconv.ParseFloat(tok.text, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errorAt(tok, ErrArgument, "%q is not a finite number", tok.text)
	}
	return n, nil
}

// looksNumeric reports whether s starts like a number, so an optional
// argument is not confused with the next command.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}
