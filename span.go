package intcalc

import (
	"strconv"
	"unicode/utf8"
)

// Span is a half-open range [Start, End) of byte offsets into the text an
// expression was parsed from.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Join returns the smallest span that covers both s and t.
func (s Span) Join(t Span) Span {
	if t.Start < s.Start {
		s.Start = t.Start
	}
	if t.End > s.End {
		s.End = t.End
	}
	return s
}

// Text returns the part of src that the span covers. Offsets outside src are
// clamped, so the result is empty rather than a panic for a span that does
// not belong to src.
func (s Span) Text(src string) string {
	start, end := clamp(s.Start, len(src)), clamp(s.End, len(src))
	if end < start {
		return ""
	}
	return src[start:end]
}

// LineCol resolves the start of the span to a 1-based line and column in src.
func (s Span) LineCol(src string) (line, col int) {
	return LineCol(src, s.Start)
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
}

// LineCol gives the 1-based line and column of the byte offset off in src.
// Columns count runes, not bytes. An offset past the end of src resolves to
// the position just after the last rune.
func LineCol(src string, off int) (line, col int) {
	off = clamp(off, len(src))
	line, col = 1, 1
	for i := 0; i < off; {
		r, sz := utf8.DecodeRuneInString(src[i:])
		i += sz
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func clamp(n, limit int) int {
	switch {
	case n < 0:
		return 0
	case n > limit:
		return limit
	default:
		return n
	}
}
