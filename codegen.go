package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
	mathbits "math/bits"

	"github.com/chronos-tachyon/assert"
)

// SingleSymbolCode is the code assigned when the alphabet has exactly one
// symbol.  The tree is then a lone leaf with no edges, and an empty code
// could not be written to a bitstream.
const SingleSymbolCode = Code("0")

// CodeTable maps each symbol of a Huffman tree to its Code.  The codes are
// prefix-free, and the size of each symbol's code is the depth of its leaf.
type CodeTable[S comparable] struct {
	codes   map[S]Code
	order   []S
	minSize int
	maxSize int
}

// GenerateCodes walks the tree rooted at root and returns its CodeTable.  A
// left edge contributes a 0 bit and a right edge a 1 bit.  A nil root yields
// an empty table, and a root that is itself a leaf is assigned
// SingleSymbolCode.
//
func GenerateCodes[S comparable](root Node[S]) CodeTable[S] {
	var ct CodeTable[S]
	if root == nil {
		return ct
	}

	ct.codes = make(map[S]Code)
	WalkLeaves(root, func(leaf *Leaf[S], path Code) {
		if path.Size() == 0 {
			path = SingleSymbolCode
		}
		ct.add(leaf.symbol, path)
	})
	return ct
}

// BuildCodeTable runs CountFrequencies, BuildTree, and GenerateCodes on
// input.
func BuildCodeTable[S comparable](input []S) CodeTable[S] {
	return GenerateCodes(BuildTree(CountFrequencies(input)))
}

func (ct *CodeTable[S]) add(symbol S, hc Code) {
	_, dupe := ct.codes[symbol]
	assert.Assertf(!dupe, "symbol %v appears in more than one leaf", symbol)

	size := hc.Size()
	if len(ct.order) == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}

	ct.codes[symbol] = hc
	ct.order = append(ct.order, symbol)
}

// Len returns the number of symbols in the table.
func (ct CodeTable[S]) Len() int {
	return len(ct.order)
}

// Lookup returns the Code for symbol, if it has one.
func (ct CodeTable[S]) Lookup(symbol S) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Encode returns the Code for symbol, or the empty Code if symbol is not in
// the table.
func (ct CodeTable[S]) Encode(symbol S) Code {
	return ct.codes[symbol]
}

// Symbols returns the symbols in the order their leaves were reached, which
// is also ascending lexicographic order of their codes.
func (ct CodeTable[S]) Symbols() []S {
	out := make([]S, len(ct.order))
	copy(out, ct.order)
	return out
}

// MinSize is the bit length of the shortest code, or 0 for an empty table.
func (ct CodeTable[S]) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code, or 0 for an empty table.
func (ct CodeTable[S]) MaxSize() int {
	return ct.maxSize
}

// Sizes returns the bit length of each symbol's code.
func (ct CodeTable[S]) Sizes() map[S]int {
	out := make(map[S]int, len(ct.codes))
	for symbol, hc := range ct.codes {
		out[symbol] = hc.Size()
	}
	return out
}

// WeightedLength returns the number of bits needed to encode a sequence with
// the given frequencies, i.e. the sum of count × code size.  Symbols missing
// from the table are ignored.  The sum saturates at math.MaxUint64.
func (ct CodeTable[S]) WeightedLength(ft FrequencyTable[S]) uint64 {
	var sum uint64
	for _, symbol := range ft.order {
		hc, found := ct.codes[symbol]
		if !found {
			continue
		}
		hi, lo := mathbits.Mul64(ft.counts[symbol], uint64(hc.Size()))
		if hi != 0 {
			return math.MaxUint64
		}
		sum = saturatingAdd(sum, lo)
	}
	return sum
}

// Validate checks that every code is non-empty and that no code is a prefix
// of another.
func (ct CodeTable[S]) Validate() error {
	_, err := NewCodeIndex(ct)
	return err
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
