package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// FrequencyTable maps each distinct symbol of an input sequence to the number
// of times it occurs.  Every symbol present has a count of at least 1.
//
// The table also remembers the order in which symbols first appeared.  That
// order is what BuildTree uses to break ties between equal weights.
//
// The zero value is an empty table.  A FrequencyTable is never modified once
// constructed.
//
type FrequencyTable[S comparable] struct {
	counts map[S]uint64
	order  []S
}

// CountFrequencies scans input once and returns its FrequencyTable.  An empty
// input yields an empty table.
func CountFrequencies[S comparable](input []S) FrequencyTable[S] {
	var ft FrequencyTable[S]
	for _, symbol := range input {
		ft.add(symbol, 1)
	}
	return ft
}

// CountRunes returns the FrequencyTable of the characters in text.  Invalid
// UTF-8 sequences are counted as utf8.RuneError.
func CountRunes(text string) FrequencyTable[rune] {
	var ft FrequencyTable[rune]
	for _, ch := range text {
		ft.add(ch, 1)
	}
	return ft
}

// NewFrequencyTable constructs a FrequencyTable from precomputed statistics:
// counts[i] is the number of occurrences of symbols[i].  Symbols must be
// distinct and counts must be non-zero.
//
func NewFrequencyTable[S comparable](symbols []S, counts []uint64) (FrequencyTable[S], error) {
	if len(symbols) != len(counts) {
		return FrequencyTable[S]{}, fmt.Errorf("%w: %d symbols, %d counts", ErrLengthMismatch, len(symbols), len(counts))
	}

	var ft FrequencyTable[S]
	for index, symbol := range symbols {
		if counts[index] == 0 {
			return FrequencyTable[S]{}, fmt.Errorf("%w: %v", ErrZeroCount, symbol)
		}
		if _, found := ft.counts[symbol]; found {
			return FrequencyTable[S]{}, fmt.Errorf("%w: %v", ErrDuplicateSymbol, symbol)
		}
		ft.add(symbol, counts[index])
	}
	return ft, nil
}

func (ft *FrequencyTable[S]) add(symbol S, n uint64) {
	if ft.counts == nil {
		ft.counts = make(map[S]uint64)
	}
	old, found := ft.counts[symbol]
	if !found {
		ft.order = append(ft.order, symbol)
	}
	ft.counts[symbol] = saturatingAdd(old, n)
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable[S]) Len() int {
	return len(ft.order)
}

// Count returns the number of occurrences of symbol, or 0 if it never occurs.
func (ft FrequencyTable[S]) Count(symbol S) uint64 {
	return ft.counts[symbol]
}

// Symbols returns the distinct symbols in order of first appearance.
func (ft FrequencyTable[S]) Symbols() []S {
	out := make([]S, len(ft.order))
	copy(out, ft.order)
	return out
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
func (ft FrequencyTable[S]) Total() uint64 {
	var sum uint64
	for _, symbol := range ft.order {
		sum = saturatingAdd(sum, ft.counts[symbol])
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft FrequencyTable[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.Total())
	for _, symbol := range ft.order {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
