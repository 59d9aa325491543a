package intcalc_test

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/zephyrtronium/intcalc"
)

// edges are operands near the boundaries where checked arithmetic fails.
var edges = []int64{
	0, 1, -1, 2, -2, 3, -3,
	math.MaxInt64, math.MaxInt64 - 1, math.MinInt64, math.MinInt64 + 1,
	math.MaxInt32, math.MinInt32, math.MaxInt32 + 1, math.MinInt32 - 1,
	1 << 32, -1 << 32, 3037000499, 3037000500, -3037000499, -3037000500,
	math.MaxInt64 / 2, math.MinInt64 / 2, math.MaxInt64/2 + 1, math.MinInt64/2 - 1,
}

// operands returns pairs of edge and random operands.
func operands() [][2]int64 {
	var r [][2]int64
	for _, a := range edges {
		for _, b := range edges {
			r = append(r, [2]int64{a, b})
		}
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a, b := int64(rng.Uint64()), int64(rng.Uint64())
		switch i % 3 {
		case 1:
			b >>= 32
		case 2:
			a >>= 32
			b >>= 32
		}
		r = append(r, [2]int64{a, b})
	}
	return r
}

// exact checks a checked result against arbitrary-precision arithmetic.
func exact(t *testing.T, name string, a, b int64, want *big.Int, got int64, kind intcalc.ErrorKind) {
	t.Helper()
	if !want.IsInt64() {
		if kind != intcalc.Overflow {
			t.Errorf("%s(%d, %d) = %d, %v; want Overflow", name, a, b, got, kind)
		}
		return
	}
	if kind != 0 || got != want.Int64() {
		t.Errorf("%s(%d, %d) = %d, %v; want %d", name, a, b, got, kind, want)
	}
}

func TestAdd64(t *testing.T) {
	for _, p := range operands() {
		a, b := p[0], p[1]
		r, k := intcalc.Add64(a, b)
		exact(t, "Add64", a, b, new(big.Int).Add(big.NewInt(a), big.NewInt(b)), r, k)
	}
}

func TestSub64(t *testing.T) {
	for _, p := range operands() {
		a, b := p[0], p[1]
		r, k := intcalc.Sub64(a, b)
		exact(t, "Sub64", a, b, new(big.Int).Sub(big.NewInt(a), big.NewInt(b)), r, k)
	}
}

func TestMul64(t *testing.T) {
	for _, p := range operands() {
		a, b := p[0], p[1]
		r, k := intcalc.Mul64(a, b)
		exact(t, "Mul64", a, b, new(big.Int).Mul(big.NewInt(a), big.NewInt(b)), r, k)
	}
}

func TestDiv64(t *testing.T) {
	for _, p := range operands() {
		a, b := p[0], p[1]
		r, k := intcalc.Div64(a, b)
		if b == 0 {
			if k != intcalc.DivideByZero {
				t.Errorf("Div64(%d, 0) = %d, %v; want DivideByZero", a, r, k)
			}
			continue
		}
		// Quo truncates toward zero, like Go's integer division.
		exact(t, "Div64", a, b, new(big.Int).Quo(big.NewInt(a), big.NewInt(b)), r, k)
	}
}

func TestNeg64(t *testing.T) {
	for _, a := range edges {
		r, k := intcalc.Neg64(a)
		exact(t, "Neg64", a, 0, new(big.Int).Neg(big.NewInt(a)), r, k)
	}
}

func TestErrorKind(t *testing.T) {
	cases := []struct {
		kind  intcalc.ErrorKind
		msg   string
		arith bool
	}{
		{0, "no error", false},
		{intcalc.MalformedLiteral, "cannot be represented as a i64", false},
		{intcalc.Overflow, "overflowed", true},
		{intcalc.DivideByZero, "divided by zero", true},
		{100, "ErrorKind(100)", false},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.msg {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(c.kind), got, c.msg)
		}
		if got := c.kind.Arithmetic(); got != c.arith {
			t.Errorf("ErrorKind(%d).Arithmetic() = %t, want %t", int(c.kind), got, c.arith)
		}
	}
}
