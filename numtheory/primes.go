package numtheory

import "fmt"

// Sieve returns a table of length n+1 where table[i] reports whether i
// is prime, built by the sieve of Eratosthenes in O(n log log n).
// Composites are struck starting from i*i; everything below has a
// smaller prime factor and is already struck. For n < 2 the table has
// no prime entries.
func Sieve(n int) []bool {
	if n < 0 {
		return nil
	}
	table := make([]bool, n+1)
	for i := 2; i <= n; i++ {
		table[i] = true
	}
	for i := 2; i*i <= n; i++ {
		if !table[i] {
			continue
		}
		for j := i * i; j <= n; j += i {
			table[j] = false
		}
	}

	return table
}

// Primes returns every prime up to and including n, ascending.
func Primes(n int) []int {
	table := Sieve(n)

	var primes []int
	for i := 2; i <= n; i++ {
		if table[i] {
			primes = append(primes, i)
		}
	}

	return primes
}

// Factorize returns the prime factorisation of n in ascending order,
// repeated factors included, by trial division up to √n. Whatever
// remains above 1 after the loop is itself prime. Factorize(1) is nil.
// Returns ErrNonPositive for n < 1.
func Factorize(n int64) ([]int64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositive, n)
	}

	var factors []int64
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}

	return factors, nil
}
