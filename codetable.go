package huffc

// CodeTableEntry is one symbol's entry in a traditional CodeTable: a
// left-justified code (the most significant CodeLen bits are meaningful,
// the rest are zero) and its length in bits.
type CodeTableEntry struct {
	Code    *BitArray
	CodeLen int
}

// CodeTable maps every active symbol to its traditional Huffman code,
// derived from a root-to-leaf walk of a HuffmanTree. Indexed by Symbol;
// inactive symbols have a nil Code and CodeLen 0.
type CodeTable struct {
	entries [NumSymbols]CodeTableEntry
}

// BuildCodeTable walks tree and records each leaf's code and length.
func BuildCodeTable(tree *HuffmanNode) *CodeTable {
	ct := &CodeTable{}
	WalkCodes(tree, func(sym Symbol, code *BitArray, depth int) {
		ct.entries[sym] = CodeTableEntry{Code: code, CodeLen: depth}
	})
	return ct
}

// Entry returns the CodeTableEntry for sym. The zero value (nil Code,
// CodeLen 0) is returned for a symbol absent from the table.
func (ct *CodeTable) Entry(sym Symbol) CodeTableEntry {
	return ct.entries[sym]
}
