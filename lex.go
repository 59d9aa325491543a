package intcalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	span Span
	// pos is the 1-based rune column of the start of the token.
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal integer literal.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

var tokenKindNames = [...]string{
	tokenNone:  "None",
	tokenEOF:   "EOF",
	tokenNum:   "Num",
	tokenOp:    "Op",
	tokenOpen:  "Open",
	tokenClose: "Close",
}

func (k tokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// OpenBracket and CloseBracket group subexpressions.
const (
	OpenBracket  = "("
	CloseBracket = ")"
)

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

// lexer scans tokens from a single line of input. Invalid runes do not stop
// scanning; they are recorded in errs and skipped.
type lexer struct {
	src  string
	off  int
	col  int
	last int
	buf  strings.Builder
	p    lexToken
	eof  bool
	errs []InputError
}

func lex(src string) *lexer {
	return &lexer{
		src: src,
		col: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("intcalc: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("intcalc: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the source and updates the lexer's position
// info. ok is false at the end of the input.
func (l *lexer) readRune() (r rune, ok bool) {
	if l.off >= len(l.src) {
		l.last = 0
		return 0, false
	}
	r, sz := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += sz
	l.col++
	l.last = sz
	return r, true
}

// unreadRune unreads the rune most recently returned by readRune. Panics if
// there is no such rune.
func (l *lexer) unreadRune() {
	if l.last == 0 {
		panic("intcalc: unread without read")
	}
	l.off -= l.last
	l.col--
	l.last = 0
}

// next scans the next token from the input. The first time the end of the
// input is reached, the result is an EOF token. After that, the lexer keeps
// returning EOF tokens at the same position.
func (l *lexer) next() lexToken {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok
	}
	defer l.buf.Reset()
	for {
		l.buf.Reset()
		tok := lexToken{span: Span{Start: l.off, End: l.off}, pos: l.col}
		r, ok := l.readRune()
		if !ok {
			l.eof = true
			tok.kind = tokenEOF
			return tok
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			valid := l.scanNum()
			tok.span.End = l.off
			if !valid {
				l.error(tok, "number")
				continue
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok
		default:
			tok.span.End = l.off
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.text = operstrs[k]
				tok.kind = tokenOp
				return tok
			}
			switch r {
			case '(':
				tok.text = OpenBracket
				tok.kind = tokenOpen
				return tok
			case ')':
				tok.text = CloseBracket
				tok.kind = tokenClose
				return tok
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			l.error(tok, "")
		}
	}
}

// drain scans the rest of the input so that every invalid token is recorded.
func (l *lexer) drain() {
	l.p = lexToken{}
	for !l.eof {
		l.next()
	}
}

// scanNum scans a run of digits into the buffer. Letters, digits, and
// underscores directly after the digits make the whole run an invalid number,
// e.g. 12ab or 1_000. The result reports whether the number is valid.
func (l *lexer) scanNum() bool {
	valid := true
	for {
		r, ok := l.readRune()
		if !ok {
			return valid
		}
		switch {
		case '0' <= r && r <= '9':
		case r == '_', r == '.', unicode.IsLetter(r), unicode.IsDigit(r):
			valid = false
		default:
			l.unreadRune()
			return valid
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(tok lexToken, kind string) {
	l.errs = append(l.errs, &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  tok.pos,
		At:   tok.span,
	})
}
