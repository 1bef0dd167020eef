// Package strmatch collects linear-time string scanning primitives.
//
// What's inside:
//
//   - LPS / Search — Knuth–Morris–Pratt: the longest-proper-prefix-suffix
//     table and an O(n+m) scan reporting every (overlapping) occurrence
//     of a pattern in a text.
//   - ZFunc / ZFuncTrivial — the Z-function: z[i] is the length of the
//     longest substring at i matching the string's own prefix. ZFunc
//     maintains the rightmost match window for O(n) total; ZFuncTrivial
//     is the quadratic reference used to cross-check it.
//   - LargestSuffix — the lexicographically largest suffix by two-pointer
//     candidate elimination (a Duval-style jump), O(n).
//   - InfixToPostfix — Dijkstra's shunting yard: infix arithmetic with
//     + - * /, parentheses and multi-digit integers rearranged into
//     Reverse Polish Notation.
//
// All routines operate on plain byte strings; none allocate beyond their
// result.
//
// Errors: only InfixToPostfix can fail — ErrBadToken for an unexpected
// character, ErrUnbalanced for mismatched parentheses.
package strmatch
