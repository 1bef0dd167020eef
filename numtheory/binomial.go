package numtheory

import "fmt"

// Choose returns C(n, k) exactly via the multiplicative formula,
// using the symmetry C(n, k) = C(n, n-k) to keep the loop short.
// Intermediate products stay exact because each prefix product is
// itself a binomial coefficient. Returns 0 when k < 0 or k > n.
func Choose(n, k int64) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	res := int64(1)
	for i := int64(1); i <= k; i++ {
		res = res * (n - i + 1) / i
	}

	return res
}

// Binomial answers C(n, k) mod a prime in O(1) per query from
// precomputed factorial and inverse-factorial tables.
type Binomial struct {
	fact []int64
	inv  []int64
	mod  int64
}

// NewBinomial precomputes factorials 0..max and their modular inverses
// under mod, which must be a prime greater than max (Fermat inversion
// needs every factorial to be invertible). O(max + log mod) time.
// Returns ErrNonPositive or ErrBadModulus on invalid arguments.
func NewBinomial(max int, mod int64) (*Binomial, error) {
	if max < 1 {
		return nil, fmt.Errorf("%w: max %d", ErrNonPositive, max)
	}
	if mod <= int64(max) {
		return nil, fmt.Errorf("%w: %d must exceed max %d", ErrBadModulus, mod, max)
	}

	b := &Binomial{
		fact: make([]int64, max+1),
		inv:  make([]int64, max+1),
		mod:  mod,
	}

	// Forward pass for factorials.
	b.fact[0] = 1
	for i := 1; i <= max; i++ {
		b.fact[i] = b.fact[i-1] * int64(i) % mod
	}

	// One Fermat inversion of max!, then a backward pass recovers the
	// rest: 1/i! = 1/(i+1)! * (i+1).
	invMax, err := ModPow(b.fact[max], mod-2, mod)
	if err != nil {
		return nil, err
	}
	b.inv[max] = invMax
	for i := max - 1; i >= 0; i-- {
		b.inv[i] = b.inv[i+1] * int64(i+1) % mod
	}

	return b, nil
}

// Factorial returns n! mod the table's modulus.
// Returns ErrOutOfRange when n exceeds the precomputed maximum.
func (b *Binomial) Factorial(n int) (int64, error) {
	if n < 0 || n >= len(b.fact) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}

	return b.fact[n], nil
}

// C returns C(n, k) mod the table's modulus, or 0 when k < 0 or k > n.
// Returns ErrOutOfRange when n exceeds the precomputed maximum.
func (b *Binomial) C(n, k int) (int64, error) {
	if n < 0 || n >= len(b.fact) {
		return 0, fmt.Errorf("%w: %d", ErrOutOfRange, n)
	}
	if k < 0 || k > n {
		return 0, nil
	}

	return b.fact[n] * b.inv[k] % b.mod * b.inv[n-k] % b.mod, nil
}
