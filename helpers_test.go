package huffman

import (
	"testing"
)

func makeTestFrequencies(t *testing.T) FrequencyTable[string] {
	t.Helper()
	ft, err := NewFrequencyTable(
		[]string{"a", "b", "c", "d", "e", "f"},
		[]uint64{5, 9, 12, 13, 16, 45})
	if err != nil {
		t.Fatalf("NewFrequencyTable failed: %v", err)
	}
	return ft
}

// optimalWeightedLength finds the least weighted code length for counts by
// trying every assignment of code lengths that satisfies Kraft's inequality.
// Any such assignment can be realized by some prefix code.
func optimalWeightedLength(counts []uint64) uint64 {
	n := len(counts)
	switch n {
	case 0:
		return 0
	case 1:
		return counts[0]
	}

	best := ^uint64(0)
	maxLen := n - 1
	lengths := make([]int, n)
	var recurse func(i int, kraft uint64)
	recurse = func(i int, kraft uint64) {
		// kraft is the sum of 2^(maxLen-len) over the lengths chosen so far.
		if kraft > uint64(1)<<maxLen {
			return
		}
		if i == n {
			var sum uint64
			for j, count := range counts {
				sum += count * uint64(lengths[j])
			}
			if sum < best {
				best = sum
			}
			return
		}
		for l := 1; l <= maxLen; l++ {
			lengths[i] = l
			recurse(i+1, kraft+uint64(1)<<(maxLen-l))
		}
	}
	recurse(0, 0)
	return best
}

// greedyDecode splits bits back into symbols by matching one bit at a time
// against idx.
func greedyDecode[S comparable](t *testing.T, idx CodeIndex[S], bits Code) []S {
	t.Helper()
	var out []S
	var hc Code
	for i := 0; i < bits.Size(); i++ {
		hc = hc.Append(bits.Bit(i))
		symbol, complete, minSize, maxSize := idx.Lookup(hc)
		if complete {
			out = append(out, symbol)
			hc = ""
			continue
		}
		if minSize == 0 && maxSize == 0 {
			t.Fatalf("no code matches %s at bit %d", hc, i)
		}
	}
	if hc.Size() != 0 {
		t.Fatalf("trailing partial code %s", hc)
	}
	return out
}
