package strmatch_test

import (
	"fmt"

	"github.com/mkravets/algokit/strmatch"
)

// ExampleSearch finds every occurrence of a pattern, overlaps included.
func ExampleSearch() {
	fmt.Println(strmatch.Search("ababa", "aba"))
	// Output: [0 2]
}

// ExampleInfixToPostfix converts an arithmetic expression to Reverse
// Polish Notation.
func ExampleInfixToPostfix() {
	tokens, err := strmatch.InfixToPostfix("3 + 4 * 2 / (1 - 5)")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(tokens)
	// Output: [3 4 2 * 1 5 - / +]
}

// ExampleLargestSuffix picks the lexicographically largest suffix.
func ExampleLargestSuffix() {
	fmt.Println(strmatch.LargestSuffix("banana"))
	// Output: nana
}
