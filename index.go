package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// CodeIndex is the reverse of a CodeTable: it maps codes back to symbols, and
// also knows about every proper prefix of every code.  This lets a caller
// match bits one at a time against the table and tell whether it has a whole
// code, part of one, or garbage.
type CodeIndex[S comparable] struct {
	table   map[Code]indexData[S]
	minSize int
	maxSize int
}

// NewCodeIndex builds the CodeIndex for ct.  It fails if ct contains an empty
// code, or if any code is a prefix of (or equal to) another.
func NewCodeIndex[S comparable](ct CodeTable[S]) (CodeIndex[S], error) {
	if ct.Len() == 0 {
		return CodeIndex[S]{}, nil
	}

	idx := CodeIndex[S]{
		table:   make(map[Code]indexData[S], 2*ct.Len()),
		minSize: ct.minSize,
		maxSize: ct.maxSize,
	}

	for _, symbol := range ct.order {
		hc := ct.codes[symbol]
		if hc.Size() == 0 {
			return CodeIndex[S]{}, fmt.Errorf("%w: symbol %v", ErrEmptyCode, symbol)
		}
		if err := fillIndex(idx.table, symbol, hc); err != nil {
			return CodeIndex[S]{}, err
		}
	}

	return idx, nil
}

// Lookup matches a (possibly partial) code against the index.
//
// If hc is a complete code, complete is true, symbol is its symbol, and
// minSize == maxSize == hc.Size().
//
// If hc is a proper prefix of one or more codes, complete is false and the
// codes it could grow into are between minSize and maxSize bits long.
//
// If hc matches nothing, complete is false and minSize == maxSize == 0.
//
func (idx CodeIndex[S]) Lookup(hc Code) (symbol S, complete bool, minSize int, maxSize int) {
	dd, found := idx.table[hc]
	if !found {
		return symbol, false, 0, 0
	}
	return dd.symbol, dd.complete, dd.minSize, dd.maxSize
}

// MinSize is the bit length of the shortest code.
func (idx CodeIndex[S]) MinSize() int {
	return idx.minSize
}

// MaxSize is the bit length of the longest code.
func (idx CodeIndex[S]) MaxSize() int {
	return idx.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeIndex to the
// given writer.  Partial matches are shown with a symbol of "-".
func (idx CodeIndex[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeIndex{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", idx.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", idx.maxSize)
	keys := make(byCode, 0, len(idx.table))
	for hc := range idx.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := idx.table[hc]
		if dd.complete {
			fmt.Fprintf(&buf, "\tLookup(%s) = {%v, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
		} else {
			fmt.Fprintf(&buf, "\tLookup(%s) = {-, %d, %d}\n", hc, dd.minSize, dd.maxSize)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type indexData[S comparable] struct {
	symbol   S
	complete bool
	minSize  int
	maxSize  int
}

func fillIndex[S comparable](table map[Code]indexData[S], symbol S, hc Code) error {
	if old, found := table[hc]; found {
		if old.complete {
			return fmt.Errorf("%w: %v and %v share code %s", ErrNotPrefixFree, old.symbol, symbol, hc)
		}
		return fmt.Errorf("%w: code %s of %v is a prefix of another code", ErrNotPrefixFree, hc, symbol)
	}

	dd := indexData[S]{symbol: symbol, complete: true, minSize: hc.Size(), maxSize: hc.Size()}
	table[hc] = dd

	for hc.Size() != 0 {
		// Mutate hc from "xxx...a" to "xxx...".

		hc = hc[:hc.Size()-1]

		// Merge dd into the entry for its parent prefix.

		ddOld, found := table[hc]
		if found && ddOld.complete {
			return fmt.Errorf("%w: code %s of %v is a prefix of the code of %v", ErrNotPrefixFree, hc, ddOld.symbol, symbol)
		}

		ddNew := indexData[S]{minSize: dd.minSize, maxSize: dd.maxSize}
		if found {
			if ddNew.minSize > ddOld.minSize {
				ddNew.minSize = ddOld.minSize
			}
			if ddNew.maxSize < ddOld.maxSize {
				ddNew.maxSize = ddOld.maxSize
			}
		}

		// If table[hc] already equals ddNew, we can stop climbing.

		if found && ddOld == ddNew {
			break
		}

		table[hc] = ddNew
		dd = ddNew
	}

	return nil
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size() != b.Size() {
		return a.Size() < b.Size()
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
