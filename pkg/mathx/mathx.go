// Package mathx provides the sign-correct division, modulo and carry
// primitives that the calendar and clock engines build on. Go's native
// integer division truncates toward zero, which gives the wrong answer for
// negative operands whenever a computation needs the mathematical floor.
package mathx

import "math"

// FloorDiv returns n divided by m, rounded toward negative infinity.
// FloorDiv(-1, 12) is -1, where Go's -1/12 would be 0.
func FloorDiv(n, m int) int {
	q := n / m
	if (n%m != 0) && ((n < 0) != (m < 0)) {
		q--
	}
	return q
}

// FloorMod returns the remainder of FloorDiv. The result has the sign of m,
// or is zero.
func FloorMod(n, m int) int {
	return n - m*FloorDiv(n, m)
}

// FloatMod returns the floating-point remainder of n/m with the sign of m
// (or exactly zero). math.Mod keeps the sign of n, so the raw remainder is
// shifted by one period when the signs disagree.
func FloatMod(n, m float64) float64 {
	r := math.Mod(n, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// AddWithCarry adds amount to value, where value is a field constrained to
// the range [0, modulus). It returns the signed number of whole modulus
// units carried into the next coarser field and the field's new in-range
// value. The identity value+amount == carry*modulus+out holds exactly for
// any sign of amount.
func AddWithCarry(modulus, amount, value int) (carry, out int) {
	total := value + amount
	carry = FloorDiv(total, modulus)
	out = total - carry*modulus
	return carry, out
}

// AddFloatWithCarry is AddWithCarry for a float-valued field such as
// milliseconds. The carry is still an integer count of whole modulus units;
// the returned field value lies in [0, modulus).
func AddFloatWithCarry(modulus, amount, value float64) (carry int, out float64) {
	total := value + amount
	carry = int(math.Floor(total / modulus))
	out = total - float64(carry)*modulus
	// Floating-point division can land the quotient a hair on the wrong
	// side of a whole number; renormalize so out stays in [0, modulus).
	if out >= modulus {
		carry++
		out -= modulus
	}
	if out < 0 {
		carry--
		out += modulus
	}
	return carry, out
}
