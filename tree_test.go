package huffman

import (
	"strings"
	"testing"
)

func TestBuildTree(t *testing.T) {
	root := BuildTree(makeTestFrequencies(t))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal = 100\n",
		"\t\tLeaf(f) = 45\n",
		"\t\tInternal = 55\n",
		"\t\t\tInternal = 25\n",
		"\t\t\t\tLeaf(c) = 12\n",
		"\t\t\t\tLeaf(d) = 13\n",
		"\t\t\tInternal = 30\n",
		"\t\t\t\tInternal = 14\n",
		"\t\t\t\t\tLeaf(a) = 5\n",
		"\t\t\t\t\tLeaf(b) = 9\n",
		"\t\t\t\tLeaf(e) = 16\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = DumpTree(&buf, root)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if depth := Depth(root); depth != 4 {
		t.Errorf("expected depth 4, got %d", depth)
	}
	if n := NumLeaves(root); n != 6 {
		t.Errorf("expected 6 leaves, got %d", n)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	root := BuildTree(CountRunes(""))
	if root != nil {
		t.Fatalf("expected nil root, got %#v", root)
	}
	if depth := Depth(root); depth != -1 {
		t.Errorf("expected depth -1, got %d", depth)
	}
	if n := NumLeaves(root); n != 0 {
		t.Errorf("expected 0 leaves, got %d", n)
	}

	var buf strings.Builder
	_, _ = DumpTree(&buf, root)
	if expect := "Tree{\n\tnil\n}\n"; buf.String() != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, buf.String())
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root := BuildTree(CountRunes("aaaa"))
	leaf, ok := root.(*Leaf[rune])
	if !ok {
		t.Fatalf("expected *Leaf root, got %T", root)
	}
	if leaf.Symbol() != 'a' || leaf.Weight() != 4 {
		t.Errorf("expected Leaf('a', 4), got Leaf(%q, %d)", leaf.Symbol(), leaf.Weight())
	}
	if depth := Depth(root); depth != 0 {
		t.Errorf("expected depth 0, got %d", depth)
	}
}

func TestBuildTree_TwoSymbols(t *testing.T) {
	root := BuildTree(CountRunes("aaabb"))
	internal, ok := root.(*Internal[rune])
	if !ok {
		t.Fatalf("expected *Internal root, got %T", root)
	}
	if internal.Weight() != 5 {
		t.Errorf("expected weight 5, got %d", internal.Weight())
	}

	// The lighter node is removed first and becomes the left child.
	left, lok := internal.Left().(*Leaf[rune])
	right, rok := internal.Right().(*Leaf[rune])
	if !lok || !rok {
		t.Fatalf("expected two leaves, got %T and %T", internal.Left(), internal.Right())
	}
	if left.Symbol() != 'b' || right.Symbol() != 'a' {
		t.Errorf("expected (b, a), got (%q, %q)", left.Symbol(), right.Symbol())
	}
}

func TestBuildTree_Weights(t *testing.T) {
	ft := CountFrequencies([]byte("the quick brown fox jumps over the lazy dog"))
	root := BuildTree(ft)

	if root.Weight() != ft.Total() {
		t.Errorf("root weight %d != total %d", root.Weight(), ft.Total())
	}

	var check func(node Node[byte])
	check = func(node Node[byte]) {
		switch node := node.(type) {
		case *Leaf[byte]:
			if node.Weight() != ft.Count(node.Symbol()) {
				t.Errorf("leaf %q has weight %d, want %d", node.Symbol(), node.Weight(), ft.Count(node.Symbol()))
			}
		case *Internal[byte]:
			if node.Left() == nil || node.Right() == nil {
				t.Fatalf("internal node with missing child")
			}
			if sum := node.Left().Weight() + node.Right().Weight(); sum != node.Weight() {
				t.Errorf("internal weight %d != sum of children %d", node.Weight(), sum)
			}
			check(node.Left())
			check(node.Right())
		}
	}
	check(root)

	seen := make(map[byte]bool)
	WalkLeaves(root, func(leaf *Leaf[byte], _ Code) {
		if seen[leaf.Symbol()] {
			t.Errorf("symbol %q appears in more than one leaf", leaf.Symbol())
		}
		seen[leaf.Symbol()] = true
	})
	if len(seen) != ft.Len() {
		t.Errorf("expected %d leaves, got %d", ft.Len(), len(seen))
	}
}

func TestBuildTree_SaturatingWeight(t *testing.T) {
	ft, err := NewFrequencyTable([]byte("xy"), []uint64{1 << 63, 1 << 63})
	if err != nil {
		t.Fatalf("NewFrequencyTable failed: %v", err)
	}
	root := BuildTree(ft)
	if root.Weight() != ^uint64(0) {
		t.Errorf("expected saturated weight, got %d", root.Weight())
	}
}
