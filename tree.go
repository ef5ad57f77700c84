package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  It is always either a *Leaf or an
// *Internal; no other implementations exist.
type Node[S comparable] interface {
	// Weight returns the total frequency of all leaves under this node.
	Weight() uint64

	isNode()
}

// Leaf is a Node that carries one symbol and its frequency.
type Leaf[S comparable] struct {
	symbol S
	weight uint64
}

// Symbol returns the symbol held by this Leaf.
func (leaf *Leaf[S]) Symbol() S {
	return leaf.symbol
}

// Weight returns the frequency of this Leaf's symbol.
func (leaf *Leaf[S]) Weight() uint64 {
	return leaf.weight
}

func (*Leaf[S]) isNode() {}

// Internal is a Node with exactly two children.  Its weight is the sum of its
// children's weights, saturating at math.MaxUint64.
type Internal[S comparable] struct {
	weight uint64
	left   Node[S]
	right  Node[S]
}

// Left returns the child reached by a 0 bit.
func (node *Internal[S]) Left() Node[S] {
	return node.left
}

// Right returns the child reached by a 1 bit.
func (node *Internal[S]) Right() Node[S] {
	return node.right
}

// Weight returns the combined weight of both children.
func (node *Internal[S]) Weight() uint64 {
	return node.weight
}

func (*Internal[S]) isNode() {}

var (
	_ Node[byte] = (*Leaf[byte])(nil)
	_ Node[byte] = (*Internal[byte])(nil)
)

// BuildTree constructs the Huffman tree for the given FrequencyTable and
// returns its root.
//
// An empty table has no tree, and BuildTree returns nil.  A table with a
// single symbol yields a lone *Leaf as the root.
//
// Otherwise, BuildTree repeatedly removes the two lightest nodes, making the
// first one removed the left child and the second one the right child of a
// new *Internal node, until only the root is left.  Equal weights are
// ordered by first appearance of the symbol, and merged nodes come after all
// leaves in the order they were created.
//
func BuildTree[S comparable](ft FrequencyTable[S]) Node[S] {
	numSymbols := ft.Len()
	if numSymbols == 0 {
		return nil
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap[S]{list: make([]seqNode[S], 0, numSymbols)}
	for index, symbol := range ft.order {
		leaf := &Leaf[S]{symbol: symbol, weight: ft.counts[symbol]}
		h.list = append(h.list, seqNode[S]{node: leaf, seq: uint(index)})
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them, and push the merged
	// node back until a single node remains.

	nextSeq := uint(numSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(seqNode[S])
		b := heap.Pop(&h).(seqNode[S])

		merged := &Internal[S]{
			weight: saturatingAdd(a.node.Weight(), b.node.Weight()),
			left:   a.node,
			right:  b.node,
		}
		heap.Push(&h, seqNode[S]{node: merged, seq: nextSeq})
		nextSeq++
	}

	// k leaves always take exactly k-1 merges.
	assert.Assertf(nextSeq == uint(2*numSymbols-1), "%d symbols merged %d times", numSymbols, nextSeq-uint(numSymbols))

	root := heap.Pop(&h).(seqNode[S])
	return root.node
}

// WalkLeaves visits every leaf under root in depth-first pre-order, left
// before right, passing the path from root to leaf.  The root of a
// single-leaf tree is visited with an empty path.  A nil root visits nothing.
//
func WalkLeaves[S comparable](root Node[S], visit func(leaf *Leaf[S], path Code)) {
	if root == nil {
		return
	}

	type stackItem struct {
		node Node[S]
		path Code
	}

	// Each stack item owns its path; pushing right before left makes the
	// left subtree come out first.
	stack := []stackItem{{node: root}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack[len(stack)-1] = stackItem{}
		stack = stack[:len(stack)-1]

		switch node := top.node.(type) {
		case *Leaf[S]:
			visit(node, top.path)
		case *Internal[S]:
			stack = append(stack,
				stackItem{node: node.right, path: top.path.Append(1)},
				stackItem{node: node.left, path: top.path.Append(0)})
		default:
			assert.Assertf(false, "unexpected node type %T", top.node)
		}
	}
}

// Depth returns the number of edges on the longest path from root to a leaf.
// A single-leaf tree has depth 0 and a nil root has depth -1.
func Depth[S comparable](root Node[S]) int {
	depth := -1
	WalkLeaves(root, func(_ *Leaf[S], path Code) {
		if path.Size() > depth {
			depth = path.Size()
		}
	})
	return depth
}

// NumLeaves returns the number of leaves under root.
func NumLeaves[S comparable](root Node[S]) int {
	var n int
	WalkLeaves(root, func(*Leaf[S], Code) { n++ })
	return n
}

// DumpTree writes a programmer-readable debugging dump of the tree rooted at
// root to the given writer, one node per line, indented by depth.
func DumpTree[S comparable](w io.Writer, root Node[S]) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if root == nil {
		buf.WriteString("\tnil\n")
	} else {
		dumpNode(&buf, root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode[S comparable](buf *bytes.Buffer, node Node[S], depth int) {
	indent := strings.Repeat("\t", depth)
	switch node := node.(type) {
	case *Leaf[S]:
		fmt.Fprintf(buf, "%sLeaf(%v) = %d\n", indent, node.symbol, node.weight)
	case *Internal[S]:
		fmt.Fprintf(buf, "%sInternal = %d\n", indent, node.weight)
		dumpNode(buf, node.left, depth+1)
		dumpNode(buf, node.right, depth+1)
	}
}

// type seqNode + type nodeHeap {{{

type seqNode[S comparable] struct {
	node Node[S]
	seq  uint
}

type nodeHeap[S comparable] struct {
	list []seqNode[S]
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap[S]) Push(x interface{}) {
	h.list = append(h.list, x.(seqNode[S]))
}

func (h *nodeHeap[S]) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = seqNode[S]{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[byte])(nil)

// }}}
