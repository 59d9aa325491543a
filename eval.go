package intcalc

import "strconv"

// ErrorKind is the reason an expression could not be evaluated. The zero
// value means no error.
type ErrorKind int8

const (
	_ ErrorKind = iota
	// MalformedLiteral means a literal's text is not an int64, usually
	// because its magnitude is too large.
	MalformedLiteral
	// Overflow means the result of an operation is not representable as an
	// int64.
	Overflow
	// DivideByZero means the divisor of a division is zero.
	DivideByZero
)

// String returns the message describing the kind, as used in EvalError.
func (k ErrorKind) String() string {
	switch k {
	case 0:
		return "no error"
	case MalformedLiteral:
		return "cannot be represented as a i64"
	case Overflow:
		return "overflowed"
	case DivideByZero:
		return "divided by zero"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Arithmetic reports whether the kind is a failure of an arithmetic operation
// rather than of a literal.
func (k ErrorKind) Arithmetic() bool {
	return k == Overflow || k == DivideByZero
}

// EvalError is the failure of the first subexpression that could not be
// evaluated.
type EvalError struct {
	// Kind is the reason for the failure.
	Kind ErrorKind
	// Span is the span of the node where the failure was detected. For an
	// arithmetic failure this is the operation's node, not an operand.
	Span Span
	// Text is the source text at Span.
	Text string
}

func (err *EvalError) Error() string {
	return "'" + err.Text + "' " + err.Kind.String()
}

// Eval evaluates the tree rooted at n. src is the text the tree was parsed
// from; literal values are read from it. If evaluation fails, the error is an
// *EvalError for the first failing node in left-to-right depth-first order.
//
// Eval does not modify the tree, so evaluating the same tree again gives the
// same result.
func Eval(src string, n *Node) (int64, error) {
	r, err := n.eval(src)
	if err != nil {
		return 0, err
	}
	return r, nil
}

// Eval evaluates the expression. See the Eval function.
func (e *Expr) Eval() (int64, error) {
	return Eval(e.src, e.root)
}

// EvalString is a shortcut to parse and evaluate an expression.
func EvalString(src string) (int64, error) {
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

func (n *Node) eval(src string) (int64, *EvalError) {
	var (
		r    int64
		kind ErrorKind
	)
	switch n.Kind {
	case NodeNum:
		v, err := strconv.ParseInt(n.Span.Text(src), 10, 64)
		if err != nil {
			return 0, n.fail(src, MalformedLiteral)
		}
		return v, nil
	case NodeNeg:
		x, err := n.Left.eval(src)
		if err != nil {
			return 0, err
		}
		r, kind = Neg64(x)
	case NodeAdd, NodeSub, NodeMul, NodeDiv:
		x, err := n.Left.eval(src)
		if err != nil {
			return 0, err
		}
		y, err := n.Right.eval(src)
		if err != nil {
			return 0, err
		}
		switch n.Kind {
		case NodeAdd:
			r, kind = Add64(x, y)
		case NodeSub:
			r, kind = Sub64(x, y)
		case NodeMul:
			r, kind = Mul64(x, y)
		case NodeDiv:
			r, kind = Div64(x, y)
		}
	default:
		panic("intcalc: invalid AST node " + n.Kind.String())
	}
	if kind != 0 {
		return 0, n.fail(src, kind)
	}
	return r, nil
}

func (n *Node) fail(src string, kind ErrorKind) *EvalError {
	return &EvalError{Kind: kind, Span: n.Span, Text: n.Span.Text(src)}
}
