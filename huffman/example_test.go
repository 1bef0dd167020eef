package huffman_test

import (
	"fmt"

	"github.com/mkravets/algokit/huffman"
)

// ExampleCodec encodes and decodes a short text with its own codes.
func ExampleCodec() {
	c, err := huffman.New("abracadabra")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	enc, _ := c.Encode("abracadabra")
	dec, _ := c.Decode(enc)

	code, _ := c.Code('a')
	fmt.Println("code for 'a':", code)
	fmt.Println("encoded:", enc)
	fmt.Println("decoded:", dec)
	// Output:
	// code for 'a': 0
	// encoded: 01101110100010101101110
	// decoded: abracadabra
}
