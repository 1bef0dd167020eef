package strmatch

// LargestSuffix returns the lexicographically largest suffix of s.
//
// Two candidate start positions race: i is the best suffix found so
// far, j the challenger. Their common prefix of length k is skipped in
// one pass; on a mismatch the loser's whole covered range is excluded,
// so each position is visited O(1) times and the scan is linear. This
// is the duelling-pointers step of Duval's Lyndon factorisation.
func LargestSuffix(s string) string {
	n := len(s)

	i, j := 0, 1
	for j < n {
		k := 0
		for j+k < n && s[i+k] == s[j+k] {
			k++
		}

		if j+k < n && s[i+k] < s[j+k] {
			// Challenger wins. Nothing inside [old i, old i+k] can beat
			// it, so the next challenger starts past that range.
			i, j = j, max(j+1, i+k+1)
		} else {
			j += k + 1
		}
	}

	return s[i:]
}
