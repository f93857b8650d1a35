package huffc

import (
	"github.com/chronos-tachyon/assert"
)

// HuffmanNode is a node in a Huffman tree: either a leaf carrying one
// symbol, or an internal node with two children. IsLeaf discriminates the
// two shapes; the source this package is adapted from used a magic
// sentinel symbol value instead of a discriminant, which spec.md §9
// explicitly calls out as the wrong shape for a fresh implementation.
type HuffmanNode struct {
	IsLeaf bool
	Symbol Symbol // valid only if IsLeaf
	Count  Count
	Level  uint32
	Left   *HuffmanNode // valid only if !IsLeaf
	Right  *HuffmanNode // valid only if !IsLeaf
}

// leafSlot is the mutable bookkeeping BuildTree needs per candidate leaf
// during minimum selection: the node itself, plus whether it has been
// consumed into a parent. This mirrors the source's huffman_node_t.ignore
// flag without the process-wide huffmanArray it lived in.
type leafSlot struct {
	node   *HuffmanNode
	ignore bool
}

// BuildTree constructs a Huffman tree from a table of per-symbol counts
// using repeated minimum selection with a level-aware tie-break: among
// equal counts, the shallower node (smaller Level) is preferred, and
// remaining ties are broken by the lower slot index (slots start out in
// symbol order; a merged node takes the slot of its left child). This keeps
// the tree shallow, per spec.md §4.4.
//
// counts must be indexed by Symbol and may include entries for symbols
// outside 0..255 (i.e. EOFSymbol) when the traditional variant is in use.
// Symbols with a zero count are inactive and never become leaves.
//
// BuildTree returns nil if there are zero active symbols, or a single-leaf
// tree if there is exactly one.
func BuildTree(counts []Count) *HuffmanNode {
	slots := make([]leafSlot, 0, len(counts))
	for sym, c := range counts {
		if c == 0 {
			continue
		}
		slots = append(slots, leafSlot{node: &HuffmanNode{
			IsLeaf: true,
			Symbol: Symbol(sym),
			Count:  c,
			Level:  0,
		}})
	}

	if len(slots) == 0 {
		return nil
	}

	for {
		i1 := findMinimum(slots)
		if i1 < 0 {
			break
		}
		slots[i1].ignore = true

		i2 := findMinimum(slots)
		if i2 < 0 {
			// A single surviving root; i1 holds it.
			break
		}
		slots[i2].ignore = true

		a, b := slots[i1].node, slots[i2].node
		merged := &HuffmanNode{
			IsLeaf: false,
			Count:  a.Count + b.Count,
			Level:  maxUint32(a.Level, b.Level) + 1,
			Left:   a,
			Right:  b,
		}
		slots[i1] = leafSlot{node: merged}
		slots[i2] = leafSlot{node: nil, ignore: true}
	}

	root := findSurvivor(slots)
	assert.Assertf(root != nil, "BuildTree: minimum-selection loop left no surviving root for %d active leaves", len(slots))
	return root
}

// findMinimum returns the index of the active (non-ignored, non-nil) slot
// with the smallest count, breaking ties by smaller level and then by
// lower array index, or -1 if no active slot exists.
func findMinimum(slots []leafSlot) int {
	best := -1
	var bestCount Count
	var bestLevel uint32
	for i := range slots {
		s := &slots[i]
		if s.ignore || s.node == nil {
			continue
		}
		if best < 0 || s.node.Count < bestCount ||
			(s.node.Count == bestCount && s.node.Level < bestLevel) {
			best = i
			bestCount = s.node.Count
			bestLevel = s.node.Level
		}
	}
	return best
}

func findSurvivor(slots []leafSlot) *HuffmanNode {
	for i := range slots {
		if slots[i].node != nil && !slots[i].ignore {
			return slots[i].node
		}
	}
	// All slots got merged into the last-created internal node, which
	// was itself placed back into a slot and marked ignore=true by the
	// final findMinimum call that selected it as i1 before discovering
	// no i2 exists. That slot still holds the real root.
	for i := range slots {
		if slots[i].node != nil {
			return slots[i].node
		}
	}
	return nil
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// stackFrame is one entry in the explicit traversal stack used by
// WalkCodeLengths and CodeTable's code-assignment walk. Using an explicit
// stack instead of parent pointers avoids the reference cycles spec.md §9
// flags as inconvenient for ownership-based languages; this is the same
// shape chronos-tachyon-huffman's firstPass uses for the identical
// problem.
type stackFrame struct {
	node  *HuffmanNode
	state int // 0 = just arrived, 1 = left done, 2 = both done
}

// WalkCodeLengths visits every leaf of tree and calls visit(symbol, depth)
// for each, where depth is the leaf's code length. The single-leaf tree
// (root.IsLeaf) is special-cased to report depth 1, per spec.md §4.4's
// single-active-leaf rule.
func WalkCodeLengths(root *HuffmanNode, visit func(sym Symbol, depth int)) {
	if root == nil {
		return
	}
	if root.IsLeaf {
		visit(root.Symbol, 1)
		return
	}

	stack := []stackFrame{{node: root, state: 0}}
	depth := 0
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		switch top.state {
		case 0:
			top.state++
			depth++
			visitChild(top.node.Left, depth, &stack, visit)
		case 1:
			top.state++
			visitChild(top.node.Right, depth, &stack, visit)
		case 2:
			stack = stack[:len(stack)-1]
			depth--
		}
	}
}

func visitChild(child *HuffmanNode, depth int, stack *[]stackFrame, visit func(Symbol, int)) {
	if child.IsLeaf {
		visit(child.Symbol, depth)
		return
	}
	*stack = append(*stack, stackFrame{node: child, state: 0})
}

// WalkCodes visits every leaf of tree and calls visit(symbol, code, depth)
// where code is the left-justified bit path from root to that leaf
// (descending left appends 0, descending right appends 1) and depth is its
// length. Used by codetable.go to build the traditional CodeTable.
func WalkCodes(root *HuffmanNode, visit func(sym Symbol, code *BitArray, depth int)) {
	if root == nil {
		return
	}
	if root.IsLeaf {
		code := NewBitArray(MaxCodeBits)
		visit(root.Symbol, code, 1)
		return
	}

	path := NewBitArray(MaxCodeBits)
	var depth int
	stack := []stackFrame{{node: root, state: 0}}

	descend := func(child *HuffmanNode, bit byte) {
		if bit == 1 {
			_ = path.Set(depth)
		} else {
			_ = path.Clear(depth)
		}
		depth++
		if child.IsLeaf {
			visit(child.Symbol, path.Dup(), depth)
			depth--
			_ = path.Clear(depth)
			return
		}
		stack = append(stack, stackFrame{node: child, state: 0})
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		switch top.state {
		case 0:
			top.state++
			descend(top.node.Left, 0)
		case 1:
			top.state++
			descend(top.node.Right, 1)
		case 2:
			stack = stack[:len(stack)-1]
			depth--
			_ = path.Clear(depth)
		}
	}
}
