// Package logic parses and evaluates skip/branch conditions against a
// snapshot of in-progress answers.
//
// The grammar is deliberately tiny and whitelisted: clauses of the form
// answer("qid") <op> literal or contains("qid", "value"), joined left-to-right
// by && and ||. Conditions are data authored alongside the survey, never
// code; nothing here evaluates anything outside this grammar.
package logic

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokOp
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
}

func (t token) String() string {
	if t.kind == tokEOF {
		return "end of condition"
	}
	return fmt.Sprintf("%q", t.text)
}

// comparison and boolean operators, longest first so ">=" wins over ">".
var operators = []string{"==", ">=", "<=", "&&", "||", ">", "<"}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && unicode.IsSpace(rune(l.src[l.pos])) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF}, nil
	}

	switch c := l.src[l.pos]; c {
	case '(':
		l.pos++
		return token{kind: tokLParen, text: "("}, nil
	case ')':
		l.pos++
		return token{kind: tokRParen, text: ")"}, nil
	case ',':
		l.pos++
		return token{kind: tokComma, text: ","}, nil
	case '"', '\'':
		return l.lexString(c)
	}

	for _, op := range operators {
		if strings.HasPrefix(l.src[l.pos:], op) {
			l.pos += len(op)
			return token{kind: tokOp, text: op}, nil
		}
	}

	start := l.pos
	for l.pos < len(l.src) && isBareRune(rune(l.src[l.pos])) {
		l.pos++
	}
	if l.pos == start {
		return token{}, fmt.Errorf("unexpected character %q at offset %d", l.src[l.pos], l.pos)
	}
	return token{kind: tokIdent, text: l.src[start:l.pos]}, nil
}

func (l *lexer) lexString(quote byte) (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == quote {
			l.pos++
			return token{kind: tokString, text: sb.String()}, nil
		}
		sb.WriteByte(c)
		l.pos++
	}
	return token{}, fmt.Errorf("unterminated string starting at offset %d", start)
}

// isBareRune covers unquoted literals: numbers, identifiers, simple words.
func isBareRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		r == '_' || r == '-' || r == '.' || r == '+'
}
