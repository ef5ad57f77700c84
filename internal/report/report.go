// Package report turns raw input into a summary of its Huffman code table.
// It is shared by the huffcodes command and the HTTP server.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	huffman "github.com/chronos-tachyon/huffmantree"
)

var (
	ErrUnknownMode = errors.New("report: unknown mode")
	ErrInvalidUTF8 = errors.New("report: input is not valid UTF-8")
)

// Mode selects how input is split into symbols.
type Mode string

const (
	// ModeBytes treats every byte as a symbol.  Symbols are reported as two
	// hex digits.
	ModeBytes Mode = "bytes"

	// ModeRunes treats every Unicode character as a symbol.
	ModeRunes Mode = "runes"

	// ModeWords treats every whitespace-separated word as a symbol.
	ModeWords Mode = "words"
)

// ParseMode converts a mode name into a Mode.  The empty string means
// ModeRunes.
func ParseMode(str string) (Mode, error) {
	switch Mode(strings.ToLower(str)) {
	case "", ModeRunes:
		return ModeRunes, nil
	case ModeBytes:
		return ModeBytes, nil
	case ModeWords:
		return ModeWords, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, str)
}

// Entry is one row of a Report.
type Entry struct {
	Symbol string `json:"symbol"`
	Count  uint64 `json:"count"`
	Code   string `json:"code"`
	Size   int    `json:"size"`
}

// Report summarizes the Huffman code table of some input.  Entries are in
// ascending order of code.
type Report struct {
	Mode            Mode    `json:"mode"`
	TotalSymbols    int     `json:"total_symbols"`
	DistinctSymbols int     `json:"distinct_symbols"`
	WeightedBits    uint64  `json:"weighted_bits"`
	MaxDepth        int     `json:"max_depth"`
	Entries         []Entry `json:"entries"`

	dumpTree func(io.Writer) (int64, error)
}

// Build splits data into symbols according to mode and reports on the
// resulting code table.  Empty input produces a report with no entries.
func Build(mode Mode, data []byte) (*Report, error) {
	switch mode {
	case ModeBytes:
		return build(mode, data, func(b byte) string {
			return fmt.Sprintf("%02x", b)
		}), nil

	case ModeRunes:
		if !utf8.Valid(data) {
			return nil, ErrInvalidUTF8
		}
		return build(mode, bytes.Runes(data), func(r rune) string {
			return string(r)
		}), nil

	case ModeWords:
		if !utf8.Valid(data) {
			return nil, ErrInvalidUTF8
		}
		return build(mode, strings.Fields(string(data)), func(word string) string {
			return word
		}), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownMode, string(mode))
}

func build[S comparable](mode Mode, input []S, name func(S) string) *Report {
	ft := huffman.CountFrequencies(input)
	root := huffman.BuildTree(ft)
	ct := huffman.GenerateCodes(root)

	r := &Report{
		Mode:            mode,
		TotalSymbols:    len(input),
		DistinctSymbols: ft.Len(),
		WeightedBits:    ct.WeightedLength(ft),
		MaxDepth:        ct.MaxSize(),
		Entries:         make([]Entry, 0, ct.Len()),
		dumpTree: func(w io.Writer) (int64, error) {
			return huffman.DumpTree(w, root)
		},
	}
	for _, symbol := range ct.Symbols() {
		hc := ct.Encode(symbol)
		r.Entries = append(r.Entries, Entry{
			Symbol: name(symbol),
			Count:  ft.Count(symbol),
			Code:   string(hc),
			Size:   hc.Size(),
		})
	}
	return r
}

// WriteText writes the report as a header line followed by one tab-separated
// line per symbol: quoted symbol, count, code.
func (r *Report) WriteText(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# mode=%s symbols=%d distinct=%d bits=%d depth=%d\n",
		r.Mode, r.TotalSymbols, r.DistinctSymbols, r.WeightedBits, r.MaxDepth)
	for _, e := range r.Entries {
		fmt.Fprintf(&buf, "%s\t%d\t%s\n", strconv.Quote(e.Symbol), e.Count, e.Code)
	}
	return buf.WriteTo(w)
}

// WriteTree writes a debugging dump of the Huffman tree behind the report.
func (r *Report) WriteTree(w io.Writer) (int64, error) {
	if r.dumpTree == nil {
		return huffman.DumpTree[string](w, nil)
	}
	return r.dumpTree(w)
}
