package huffc

import "testing"

func lengthsOf(tree *HuffmanNode) map[Symbol]int {
	out := map[Symbol]int{}
	WalkCodeLengths(tree, func(sym Symbol, depth int) {
		out[sym] = depth
	})
	return out
}

func TestBuildTreeEmpty(t *testing.T) {
	var counts [NumSymbols]Count
	if tree := BuildTree(counts[:]); tree != nil {
		t.Errorf("BuildTree with all-zero counts should return nil, got %+v", tree)
	}
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	var counts [NumSymbols]Count
	counts[Symbol('A')] = 10
	tree := BuildTree(counts[:])
	if tree == nil || !tree.IsLeaf {
		t.Fatalf("expected a single-leaf tree, got %+v", tree)
	}
	lens := lengthsOf(tree)
	if lens[Symbol('A')] != 1 {
		t.Errorf("single active leaf should get code length 1, got %d", lens[Symbol('A')])
	}
}

func TestBuildTreeShapeInvariants(t *testing.T) {
	var counts [NumSymbols]Count
	freqs := map[byte]Count{'A': 5, 'B': 9, 'C': 12, 'D': 13, 'E': 16, 'F': 45}
	for b, f := range freqs {
		counts[Symbol(b)] = f
	}
	tree := BuildTree(counts[:])
	lens := lengthsOf(tree)
	if len(lens) != len(freqs) {
		t.Fatalf("expected %d leaves, got %d", len(freqs), len(lens))
	}
	if lens[Symbol('F')] > lens[Symbol('E')] || lens[Symbol('E')] > lens[Symbol('D')] {
		t.Errorf("higher-frequency symbols should not get longer codes: lens=%v", lens)
	}

	// Kraft inequality.
	var sum float64
	for _, l := range lens {
		sum += 1.0 / float64(uint64(1)<<uint(l))
	}
	if sum > 1.0+1e-9 {
		t.Errorf("Kraft inequality violated: sum=%f", sum)
	}
}

func TestBuildTreeLevelAwareTieBreak(t *testing.T) {
	// Four equal-count leaves: the level-aware tie-break should produce a
	// perfectly balanced tree (all codes length 2), since merging the two
	// shallowest nodes first at every step keeps the tree from growing
	// lopsided.
	var counts [NumSymbols]Count
	for _, b := range []byte{'A', 'B', 'C', 'D'} {
		counts[Symbol(b)] = 1
	}
	tree := BuildTree(counts[:])
	lens := lengthsOf(tree)
	for sym, l := range lens {
		if l != 2 {
			t.Errorf("symbol %d: expected code length 2 in balanced case, got %d", sym, l)
		}
	}
}

func TestWalkCodesPrefixProperty(t *testing.T) {
	var counts [NumSymbols]Count
	freqs := map[byte]Count{'A': 1, 'B': 2, 'C': 3, 'D': 20, 'E': 1}
	for b, f := range freqs {
		counts[Symbol(b)] = f
	}
	tree := BuildTree(counts[:])
	ct := BuildCodeTable(tree)

	type entry struct {
		sym  Symbol
		code *BitArray
		len  int
	}
	var all []entry
	for b := range freqs {
		e := ct.Entry(Symbol(b))
		all = append(all, entry{Symbol(b), e.Code, e.CodeLen})
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			if isPrefixOf(a.code, a.len, b.code, b.len) {
				t.Errorf("code for %d (len %d) is a prefix of code for %d (len %d)", a.sym, a.len, b.sym, b.len)
			}
		}
	}
}

func isPrefixOf(short *BitArray, shortLen int, long *BitArray, longLen int) bool {
	if shortLen >= longLen {
		return false
	}
	for i := 0; i < shortLen; i++ {
		a, _ := short.Test(i)
		b, _ := long.Test(i)
		if a != b {
			return false
		}
	}
	return true
}
