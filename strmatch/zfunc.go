package strmatch

// ZFunc returns the Z-array of s: z[i] is the length of the longest
// substring starting at i that matches the prefix of s (z[0] is left 0).
//
// The scan maintains [l, r), the rightmost window known to match the
// prefix. An index inside the window inherits min(r-i, z[i-l]) as a
// lower bound and only compares characters past r, so every character
// is compared O(1) times amortised and the whole pass is O(n).
func ZFunc(s string) []int {
	n := len(s)
	z := make([]int, n)

	l, r := 0, 0
	for i := 1; i < n; i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}

	return z
}

// ZFuncTrivial computes the same Z-array by direct comparison at every
// index, O(n²) worst case. It exists as the reference implementation to
// cross-check ZFunc against.
func ZFuncTrivial(s string) []int {
	n := len(s)
	z := make([]int, n)

	for i := 1; i < n; i++ {
		for i+z[i] < n && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
	}

	return z
}
