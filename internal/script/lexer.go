package script

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokOpen
	tokClose
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

// lex splits src into words and brackets. Whitespace and ';' separate tokens,
// '#' starts a comment that runs to the end of the line.
func lex(src string) []token {
	var toks []token
	line, col := 1, 0

	var word strings.Builder
	wordLine, wordCol := 0, 0
	flush := func() {
		if word.Len() == 0 {
			return
		}
		toks = append(toks, token{kind: tokWord, text: word.String(), line: wordLine, col: wordCol})
		word.Reset()
	}

	comment := false
	for _, r := range src {
		col++
		if r == '\n' {
			flush()
			comment = false
			line++
			col = 0
			continue
		}
		if comment {
			continue
		}

		switch {
		case r == '#':
			flush()
			comment = true
		case r == ';' || unicode.IsSpace(r):
			flush()
		case r == '[':
			flush()
			toks = append(toks, token{kind: tokOpen, text: "[", line: line, col: col})
		case r == ']':
			flush()
			toks = append(toks, token{kind: tokClose, text: "]", line: line, col: col})
		default:
			if word.Len() == 0 {
				wordLine, wordCol = line, col
			}
			word.WriteRune(r)
		}
	}
	flush()

	toks = append(toks, token{kind: tokEOF, line: line, col: col + 1})
	return toks
}
