package huffman

import (
	"errors"
)

var (
	// ErrLengthMismatch is returned by NewFrequencyTable when the symbol
	// and count lists differ in length.
	ErrLengthMismatch = errors.New("huffman: symbols and counts differ in length")

	// ErrDuplicateSymbol is returned by NewFrequencyTable when a symbol is
	// listed more than once.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol")

	// ErrZeroCount is returned by NewFrequencyTable for a symbol with a
	// count of 0.  Symbols that never occur are simply left out.
	ErrZeroCount = errors.New("huffman: symbol with zero count")

	ErrInvalidCode   = errors.New("huffman: invalid bit in code")
	ErrEmptyCode     = errors.New("huffman: empty code")
	ErrNotPrefixFree = errors.New("huffman: code table is not prefix-free")
)
