package intcalc

import (
	"strconv"
	"strings"
)

// Node is a node in the syntax tree of an expression. Each node exclusively
// owns its children, and nodes are not modified after parsing.
type Node struct {
	Kind NodeKind
	// Span covers the whole subexpression, including any brackets around
	// operands but not brackets around the node itself.
	Span Span
	// Left is the operand of a negation or the left operand of a binary
	// operator. Right is the right operand of a binary operator.
	Left  *Node
	Right *Node
}

// NodeKind selects the operation of a Node.
type NodeKind int8

const (
	NodeNone NodeKind = iota

	NodeNum // literal; value is the text at Span
	NodeNeg // evaluate left, then negate
	NodeAdd // evaluate left, add right
	NodeSub // evaluate left, sub right
	NodeMul // evaluate left, mul right
	NodeDiv // evaluate left, div by right
)

var nodeKindNames = [...]string{
	NodeNone: "None",
	NodeNum:  "Num",
	NodeNeg:  "Neg",
	NodeAdd:  "Add",
	NodeSub:  "Sub",
	NodeMul:  "Mul",
	NodeDiv:  "Div",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// Expr is a parsed expression together with the line it was parsed from.
type Expr struct {
	src  string
	root *Node
}

// Root returns the root node of the expression's syntax tree.
func (e *Expr) Root() *Node {
	return e.root
}

// Source returns the text the expression was parsed from. Every span in the
// syntax tree is an offset into it.
func (e *Expr) Source() string {
	return e.src
}

// Depth returns the number of nodes on the longest path from the root to a
// literal.
func (e *Expr) Depth() int {
	return e.root.depth()
}

func (n *Node) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.Left.depth(), n.Right.depth()
	if r > l {
		l = r
	}
	return l + 1
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.root.fmt(&b, e.src, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, src string, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.Kind {
	case NodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.Left != nil {
			n.Left.fmt(b, src, !square)
		}
		b.WriteByte('#')
		if n.Right != nil {
			n.Right.fmt(b, src, !square)
		}
		b.WriteByte('$')
	case NodeNum:
		b.WriteString(n.Span.Text(src))
	case NodeNeg:
		b.WriteByte('-')
		n.Left.fmt(b, src, !square)
	case NodeAdd:
		n.binary(b, src, square, " + ")
	case NodeSub:
		n.binary(b, src, square, " - ")
	case NodeMul:
		n.binary(b, src, square, " * ")
	case NodeDiv:
		n.binary(b, src, square, " / ")
	default:
		panic("intcalc: invalid node kind " + n.Kind.String() + " after writing " + b.String())
	}
}

func (n *Node) binary(b *strings.Builder, src string, square bool, op string) {
	n.Left.fmt(b, src, !square)
	b.WriteString(op)
	n.Right.fmt(b, src, !square)
}
