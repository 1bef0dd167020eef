package strmatch

// LPS returns the longest-proper-prefix-suffix table for pattern:
// lps[i] is the length of the longest proper prefix of pattern[:i+1]
// that is also its suffix. The table drives the KMP scan's fallbacks.
func LPS(pattern string) []int {
	lps := make([]int, len(pattern))

	i, j := 1, 0
	for i < len(pattern) {
		switch {
		case pattern[i] == pattern[j]:
			// Extend the current prefix-suffix run.
			lps[i] = j + 1
			i, j = i+1, j+1
		case j == 0:
			i++
		default:
			// Fall back to the next shorter border and retry.
			j = lps[j-1]
		}
	}

	return lps
}

// Search returns the start offsets of every occurrence of pattern in
// text, overlapping ones included, in O(len(text)+len(pattern)) time.
// An empty pattern yields no matches.
func Search(text, pattern string) []int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return nil
	}
	lps := LPS(pattern)

	var matches []int
	i, j := 0, 0
	for i < len(text) {
		switch {
		case text[i] == pattern[j]:
			i, j = i+1, j+1
			if j == len(pattern) {
				matches = append(matches, i-len(pattern))
				j = lps[j-1] // keep scanning for overlaps
			}
		case j == 0:
			i++
		default:
			j = lps[j-1]
		}
	}

	return matches
}
