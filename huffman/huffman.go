// Package huffman builds optimal prefix codes over the bytes of a
// sample text and encodes/decodes with them.
//
// Construction follows the classic greedy scheme: count byte
// frequencies, seed a min-heap with one leaf per distinct byte, then
// repeatedly merge the two lightest nodes until a single tree remains.
// Codes are read off the tree with 0 for left and 1 for right, so the
// most frequent bytes get the shortest codes and no code is a prefix of
// another.
//
// Ties on frequency are broken by node age (leaves first, in ascending
// byte order), which makes the tree — and therefore every code —
// deterministic for a given input.
//
// Encoded output is a string of '0'/'1' characters rather than packed
// bits; the package demonstrates the coding scheme, not a container
// format.
//
// Errors: ErrEmptyInput on an empty sample; ErrUnknownSymbol when
// encoding a byte absent from the sample; ErrBadCode when decoding a
// malformed bit string.
package huffman

import (
	"container/heap"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the huffman package.
var (
	// ErrEmptyInput indicates an empty sample text.
	ErrEmptyInput = errors.New("huffman: sample text must be non-empty")

	// ErrUnknownSymbol indicates a byte with no assigned code.
	ErrUnknownSymbol = errors.New("huffman: symbol not present in sample")

	// ErrBadCode indicates a bit string that no code sequence produces.
	ErrBadCode = errors.New("huffman: malformed code string")
)

// node is one tree node; leaves carry a symbol, internal nodes only a
// combined frequency. seq is the creation order used to break frequency
// ties deterministically.
type node struct {
	symbol      byte
	freq        int
	seq         int
	left, right *node
}

func (n *node) leaf() bool { return n.left == nil && n.right == nil }

// nodeHeap is a min-heap of tree nodes ordered by (freq, seq).
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// Codec holds a Huffman tree and its code table, both derived from one
// sample text. A Codec is immutable after construction.
type Codec struct {
	root  *node
	codes map[byte]string
}

// New derives a Codec from the byte frequencies of sample.
// Returns ErrEmptyInput when sample is empty.
func New(sample string) (*Codec, error) {
	if len(sample) == 0 {
		return nil, ErrEmptyInput
	}

	// 1) Count frequencies over the full byte range.
	var freq [256]int
	for i := 0; i < len(sample); i++ {
		freq[sample[i]]++
	}

	// 2) Seed the heap with leaves in ascending byte order.
	h := &nodeHeap{}
	seq := 0
	for b := 0; b < 256; b++ {
		if freq[b] == 0 {
			continue
		}
		*h = append(*h, &node{symbol: byte(b), freq: freq[b], seq: seq})
		seq++
	}
	heap.Init(h)

	// 3) Merge the two lightest nodes until one tree remains.
	for h.Len() > 1 {
		left := heap.Pop(h).(*node)
		right := heap.Pop(h).(*node)
		heap.Push(h, &node{
			freq:  left.freq + right.freq,
			seq:   seq,
			left:  left,
			right: right,
		})
		seq++
	}

	c := &Codec{
		root:  heap.Pop(h).(*node),
		codes: make(map[byte]string),
	}
	c.assign(c.root, "")

	return c, nil
}

// assign walks the tree recording each leaf's path, 0 left and 1 right.
// A single-leaf tree still needs a nonempty code, so the lone symbol
// gets "0".
func (c *Codec) assign(n *node, prefix string) {
	if n.leaf() {
		if prefix == "" {
			prefix = "0"
		}
		c.codes[n.symbol] = prefix

		return
	}

	c.assign(n.left, prefix+"0")
	c.assign(n.right, prefix+"1")
}

// Code returns the bit string assigned to symbol and whether the symbol
// occurred in the sample.
func (c *Codec) Code(symbol byte) (string, bool) {
	code, ok := c.codes[symbol]

	return code, ok
}

// Encode concatenates the codes of every byte of text.
// Returns ErrUnknownSymbol for bytes absent from the sample.
func (c *Codec) Encode(text string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		code, ok := c.codes[text[i]]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, text[i])
		}
		sb.WriteString(code)
	}

	return sb.String(), nil
}

// Decode walks the tree bit by bit, emitting a symbol at every leaf.
// Returns ErrBadCode on characters other than '0'/'1' or when the bits
// end mid-code.
func (c *Codec) Decode(bits string) (string, error) {
	var sb strings.Builder

	// Single-symbol tree: the root itself is the leaf.
	if c.root.leaf() {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return "", fmt.Errorf("%w: bit %q at offset %d", ErrBadCode, bits[i], i)
			}
			sb.WriteByte(c.root.symbol)
		}

		return sb.String(), nil
	}

	n := c.root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			n = n.left
		case '1':
			n = n.right
		default:
			return "", fmt.Errorf("%w: bit %q at offset %d", ErrBadCode, bits[i], i)
		}
		if n.leaf() {
			sb.WriteByte(n.symbol)
			n = c.root
		}
	}
	if n != c.root {
		return "", fmt.Errorf("%w: truncated code at end of input", ErrBadCode)
	}

	return sb.String(), nil
}
