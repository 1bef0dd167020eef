// Package numtheory bundles the small arithmetic routines the other
// packages (and competitive-programming style problems) lean on:
// Euclid's GCD and LCM, binary exponentiation in plain and modular
// form, a sieve of Eratosthenes, trial-division prime factorisation,
// and binomial coefficients — both the direct product formula and a
// factorial-table variant for repeated queries modulo a prime.
//
// Everything is iterative and allocation-light; the only state-carrying
// type is Binomial, which precomputes factorials and their modular
// inverses once (Fermat's little theorem) and answers C(n,k) queries in
// O(1).
package numtheory

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the numtheory package.
var (
	// ErrNegativeExponent indicates an exponent below zero.
	ErrNegativeExponent = errors.New("numtheory: exponent must be >= 0")

	// ErrBadModulus indicates a modulus that is not > 1.
	ErrBadModulus = errors.New("numtheory: modulus must be > 1")

	// ErrNonPositive indicates an argument that must be >= 1.
	ErrNonPositive = errors.New("numtheory: argument must be >= 1")

	// ErrOutOfRange indicates a query beyond a precomputed table.
	ErrOutOfRange = errors.New("numtheory: argument exceeds precomputed range")
)

// GCD returns the greatest common divisor of a and b by the iterative
// Euclidean algorithm. Negative inputs contribute their absolute value;
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b, or 0 when either
// is 0. Dividing before multiplying keeps the intermediate small.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}

	return a / GCD(a, b) * b
}

// Pow returns base**exp by exponentiation by squaring, O(log exp)
// multiplications. Overflow is the caller's concern; use ModPow for
// large exponents. Returns ErrNegativeExponent when exp < 0.
func Pow(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeExponent, exp)
	}

	res := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			res *= base
		}
		base *= base
		exp >>= 1
	}

	return res, nil
}

// ModPow returns base**exp mod m, reducing after every multiplication.
// base may be negative; the result is always in [0, m). Returns
// ErrNegativeExponent or ErrBadModulus on invalid arguments.
func ModPow(base, exp, m int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeExponent, exp)
	}
	if m <= 1 {
		return 0, fmt.Errorf("%w: %d", ErrBadModulus, m)
	}

	base %= m
	if base < 0 {
		base += m
	}

	res := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			res = res * base % m
		}
		base = base * base % m
		exp >>= 1
	}

	return res, nil
}
