package intcalc

import (
	"strconv"
)

// Expr = num | Neg | Add | Sub | Mul | Div | '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr

// Parse parses one line of input into an expression. If the input is not a
// valid expression, the error is a SyntaxErrors listing every invalid token,
// or the first grammar error if all tokens are valid.
func Parse(src string) (*Expr, error) {
	scan := lex(src)
	n, err := parse(scan)
	if err != nil {
		scan.drain()
	}
	if len(scan.errs) != 0 {
		// Grammar errors after an invalid token are usually caused by it.
		return nil, SyntaxErrors(scan.errs)
	}
	if err != nil {
		return nil, SyntaxErrors{err.(InputError)}
	}
	return &Expr{src: src, root: n}, nil
}

// MustParse is like Parse but panics if the input is not a valid expression.
func MustParse(src string) *Expr {
	e, err := Parse(src)
	if err != nil {
		panic("intcalc: parsing " + strconv.Quote(src) + ": " + err.Error())
	}
	return e
}

func parse(scan *lexer) (*Node, error) {
	n, _, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	tok := scan.must()
	if n == nil {
		if tok.kind == tokenEOF {
			return nil, &EmptyExpressionError{Col: tok.pos, At: tok.span}
		}
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	if tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	return n, nil
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
//
// The returned span is the extent of the term in the source, which includes
// brackets around it when the term is a bracketed subexpression.
func parseterm(scan *lexer, until operator) (*Node, Span, error) {
	n, ext, err := parselhs(scan, until)
	if err != nil || n == nil {
		return nil, Span{}, err
	}
	for {
		tok := scan.next()
		switch tok.kind {
		case tokenNum, tokenOpen:
			// There is no implicit multiplication, so a term can't follow
			// another term.
			return nil, Span{}, &UnexpectedTokenError{Col: tok.pos, At: tok.span, Token: tok.text}
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == NodeNone {
				return nil, Span{}, &OperatorError{Col: tok.pos, At: tok.span, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, ext, nil
			}
			rhs, rext, err := parseterm(scan, prec)
			if err != nil {
				return nil, Span{}, err
			}
			if rhs == nil {
				return nil, Span{}, emptyOperand(scan.must())
			}
			ext = ext.Join(rext)
			n = &Node{Kind: prec.op, Span: ext, Left: n, Right: rhs}
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, ext, nil
		default:
			panic("intcalc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *lexer, until operator) (*Node, Span, error) {
	tok := scan.next()
	switch tok.kind {
	case tokenNum:
		return &Node{Kind: NodeNum, Span: tok.span}, tok.span, nil
	case tokenOp:
		// unary operator
		prec := unop(tok.text)
		if prec.op == NodeNone {
			return nil, Span{}, &OperatorError{Col: tok.pos, At: tok.span, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// Unary operators bind tighter than anything else, but keep
			// parsing sensibly if that changes.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, rext, err := parseterm(scan, prec)
		if err != nil {
			return nil, Span{}, err
		}
		if rhs == nil {
			return nil, Span{}, emptyOperand(scan.must())
		}
		ext := tok.span.Join(rext)
		return &Node{Kind: prec.op, Span: ext, Left: rhs}, ext, nil
	case tokenOpen:
		rhs, _, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, Span{}, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, Span{}, itShouldNotHaveEndedThisWay(end, true)
		}
		if rhs == nil {
			return nil, Span{}, &EmptyExpressionError{Col: end.pos, At: end.span, End: end.text}
		}
		return rhs, tok.span.Join(end.span), nil
	case tokenClose, tokenEOF:
		// Let the caller decide whether an empty subexpression is an error.
		scan.push(tok)
		return nil, Span{}, nil
	default:
		panic("intcalc: unknown token: " + tok.String())
	}
}

// emptyOperand returns an error for an operator with nothing following it.
// tok is the token that ended the missing operand.
func emptyOperand(tok lexToken) error {
	return &EmptyExpressionError{Col: tok.pos, At: tok.span, End: tok.text}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. bracketed is whether the expression
// should have ended with a close bracket.
func itShouldNotHaveEndedThisWay(tok lexToken, bracketed bool) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, At: tok.span, Left: OpenBracket}
	case tokenClose:
		if bracketed {
			panic("intcalc: bracketed expression ended on its own close bracket")
		}
		return &BracketError{Col: tok.pos, At: tok.span, Right: tok.text}
	default:
		panic("intcalc: it really should not have ended this way: " + tok.String())
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op NodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of NodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, NodeAdd}
	case "-":
		return operator{1, false, NodeSub}
	case "*":
		return operator{5, false, NodeMul}
	case "/":
		return operator{5, false, NodeDiv}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of NodeNone.
func unop(text string) operator {
	switch text {
	case "-":
		return operator{10, true, NodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, NodeNone}
