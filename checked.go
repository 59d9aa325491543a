package intcalc

import "math"

// Add64 returns a+b, or Overflow if the sum does not fit in an int64.
func Add64(a, b int64) (int64, ErrorKind) {
	r := a + b
	// Overflow happened iff both operands have the sign opposite the result.
	if (a^r)&(b^r) < 0 {
		return 0, Overflow
	}
	return r, 0
}

// Sub64 returns a-b, or Overflow if the difference does not fit in an int64.
func Sub64(a, b int64) (int64, ErrorKind) {
	r := a - b
	if (a^b)&(a^r) < 0 {
		return 0, Overflow
	}
	return r, 0
}

// Mul64 returns a*b, or Overflow if the product does not fit in an int64.
func Mul64(a, b int64) (int64, ErrorKind) {
	if a == 0 || b == 0 {
		return 0, 0
	}
	// The division check below can't see MinInt64 * -1, because
	// MinInt64 / -1 wraps back to MinInt64.
	if a == -1 && b == math.MinInt64 || b == -1 && a == math.MinInt64 {
		return 0, Overflow
	}
	r := a * b
	if r/b != a {
		return 0, Overflow
	}
	return r, 0
}

// Div64 returns a/b truncated toward zero. The result is DivideByZero if b is
// zero and Overflow for MinInt64 / -1.
func Div64(a, b int64) (int64, ErrorKind) {
	switch {
	case b == 0:
		return 0, DivideByZero
	case a == math.MinInt64 && b == -1:
		return 0, Overflow
	}
	return a / b, 0
}

// Neg64 returns -a, or Overflow if a is MinInt64.
func Neg64(a int64) (int64, ErrorKind) {
	if a == math.MinInt64 {
		return 0, Overflow
	}
	return -a, 0
}
