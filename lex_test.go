package intcalc

import (
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   []string
	}{
		// spaces
		{"", nil, nil},
		{" \t \r ", nil, nil},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, span: Span{0, 1}, pos: 1}}, nil},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, span: Span{0, 10}, pos: 1}}, nil},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, span: Span{0, 1}, pos: 1}, {text: "0", kind: tokenNum, span: Span{2, 3}, pos: 3}}, nil},
		{"99999999999999999999", []lexToken{{text: "99999999999999999999", kind: tokenNum, span: Span{0, 20}, pos: 1}}, nil},
		{"-1", []lexToken{{text: "-", kind: tokenOp, span: Span{0, 1}, pos: 1}, {text: "1", kind: tokenNum, span: Span{1, 2}, pos: 2}}, nil},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, span: Span{0, 1}, pos: 1}, {text: "+", kind: tokenOp, span: Span{1, 2}, pos: 2}, {text: "0", kind: tokenNum, span: Span{2, 3}, pos: 3}}, nil},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, span: Span{0, 1}, pos: 1}, {text: "*", kind: tokenOp, span: Span{1, 2}, pos: 2}, {text: "0", kind: tokenNum, span: Span{2, 3}, pos: 3}}, nil},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, span: Span{0, 1}, pos: 1}, {text: "1", kind: tokenNum, span: Span{1, 2}, pos: 2}, {text: ")", kind: tokenClose, span: Span{2, 3}, pos: 3}}, nil},
		// operators
		{"+-*/", []lexToken{{text: "+", kind: tokenOp, span: Span{0, 1}, pos: 1}, {text: "-", kind: tokenOp, span: Span{1, 2}, pos: 2}, {text: "*", kind: tokenOp, span: Span{2, 3}, pos: 3}, {text: "/", kind: tokenOp, span: Span{3, 4}, pos: 4}}, nil},
		// erroneous symbols
		{"$", nil, []string{"$"}},
		{"1a", nil, []string{"1a"}},
		{"1.5", nil, []string{"1.5"}},
		{"1_000", nil, []string{"1_000"}},
		{"x", nil, []string{"x"}},
		{"1$", []lexToken{{text: "1", kind: tokenNum, span: Span{0, 1}, pos: 1}}, []string{"$"}},
		{"$1", []lexToken{{text: "1", kind: tokenNum, span: Span{1, 2}, pos: 2}}, []string{"$"}},
		{"$$", nil, []string{"$", "$"}},
		{"×2", []lexToken{{text: "2", kind: tokenNum, span: Span{2, 3}, pos: 2}}, []string{"×"}},
	}

	for _, c := range cases {
		scan := lex(c.src)
		for _, want := range c.tokens {
			got := scan.next()
			if got.kind == tokenEOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		if got := scan.next(); got.kind != tokenEOF {
			t.Errorf("scanning %q: extra token %v", c.src, got)
		}
		if got := scan.next(); got.kind != tokenEOF || got.span.Start != len(c.src) {
			t.Errorf("scanning %q: EOF not repeated at end, got %v", c.src, got)
		}
		if len(scan.errs) != len(c.errs) {
			t.Errorf("scanning %q: want %d errors, got %v", c.src, len(c.errs), scan.errs)
			continue
		}
		for i, err := range scan.errs {
			lerr, ok := err.(*LexError)
			if !ok {
				t.Errorf("scanning %q: error %d is %T, not *LexError", c.src, i, err)
				continue
			}
			if lerr.Text != c.errs[i] {
				t.Errorf("scanning %q: error %d has text %q, want %q", c.src, i, lerr.Text, c.errs[i])
			}
			if got := lerr.At.Text(c.src); got != c.errs[i] {
				t.Errorf("scanning %q: error %d spans %q, want %q", c.src, i, got, c.errs[i])
			}
		}
	}
}

func TestLexPushMust(t *testing.T) {
	scan := lex("1 2")
	tok := scan.next()
	scan.push(tok)
	if got := scan.must(); got != tok {
		t.Errorf("must gave %v after pushing %v", got, tok)
	}
	scan.push(tok)
	if got := scan.next(); got != tok {
		t.Errorf("next gave %v after pushing %v", got, tok)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("must without push didn't panic")
			}
		}()
		scan.must()
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("double push didn't panic")
			}
		}()
		scan.push(tok)
		scan.push(tok)
	}()
}
