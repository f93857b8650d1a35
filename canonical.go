package huffc

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// CanonicalListEntry is one symbol's entry in a canonical code: its code
// length and its assigned, left-justified code.
type CanonicalListEntry struct {
	Symbol  Symbol
	CodeLen byte
	Code    *BitArray
}

// CanonicalCoder converts a table of per-symbol code lengths into canonical
// codes, and back again into a symbol-matching table for decoding. Given
// the same length table, two independently constructed CanonicalCoders
// always agree bit-for-bit: the assignment below depends only on the
// sorted (len, symbol) order and a running integer increment, per spec.
type CanonicalCoder struct {
	bySymbol []CanonicalListEntry // index aligns with symbol
	lenIndex [MaxCodeLen + 2]int  // lenIndex[L] = first index in bySize with CodeLen>=L, or len(bySize)
	bySize   []CanonicalListEntry
}

// symAndLen is the (symbol, length) pair CanonicalCoder sorts on.
type symAndLen struct {
	symbol Symbol
	length byte
}

// BuildCanonicalCoder assigns canonical codes from a per-symbol length
// table (the caller's lengths slice; zero means inactive — callers pass
// NumSymbols entries so EOFSymbol's length is included). The assignment
// follows the standard canonical-Huffman construction: sort active symbols
// by (length ascending, symbol ascending), then assign codes sequentially
// so that the first code of a given length equals
// (last code of the previous length + 1) left-shifted by the length
// difference. This is the same sequential-increment construction as
// chronos-tachyon-huffman's secondPass, generalized from a 32-bit register
// to a 256-bit BitArray so lengths up to MaxCodeLen are representable.
func BuildCanonicalCoder(lengths []byte) *CanonicalCoder {
	active := make([]symAndLen, 0, len(lengths))
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		active = append(active, symAndLen{symbol: Symbol(sym), length: l})
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].length != active[j].length {
			return active[i].length < active[j].length
		}
		return active[i].symbol < active[j].symbol
	})

	cc := &CanonicalCoder{
		bySymbol: make([]CanonicalListEntry, len(lengths)),
		bySize:   make([]CanonicalListEntry, len(active)),
	}
	for i := range cc.lenIndex {
		cc.lenIndex[i] = len(active)
	}

	if len(active) == 0 {
		return cc
	}

	code := NewBitArray(MaxCodeBits)
	lastLen := active[0].length
	for i, a := range active {
		if a.length > lastLen {
			code.ShiftLeft(int(a.length - lastLen))
			lastLen = a.length
		}
		assert.Assertf(int(a.length) <= MaxCodeLen, "canonical code length %d exceeds MaxCodeLen %d", a.length, MaxCodeLen)

		assigned := code.Dup()
		assigned.ShiftLeft(MaxCodeBits - int(a.length))
		entry := CanonicalListEntry{Symbol: a.symbol, CodeLen: a.length, Code: assigned}
		cc.bySize[i] = entry
		cc.bySymbol[a.symbol] = entry

		if overflow := code.Increment(); overflow {
			assert.Assertf(i == len(active)-1, "canonical code register overflowed before the last symbol (%d of %d)", i, len(active))
		}
	}

	// lenIndex[l] = first position in bySize whose CodeLen == l, found by
	// scanning from the longest length down so each shorter length's
	// index is no greater than the nearest longer length's.
	idx := len(active)
	for l := len(cc.lenIndex) - 1; l >= 0; l-- {
		for idx > 0 && int(cc.bySize[idx-1].CodeLen) >= l {
			idx--
		}
		cc.lenIndex[l] = idx
	}

	return cc
}

// Entry returns sym's canonical list entry. The zero value (nil Code,
// CodeLen 0) is returned for an inactive symbol.
func (cc *CanonicalCoder) Entry(sym Symbol) CanonicalListEntry {
	return cc.bySymbol[sym]
}

// Match looks for an assigned code equal to the bits currently held in reg
// (the first length bits of reg, MSB-first) among all entries of exactly that
// length. It returns the matching symbol and true, or InvalidSymbol and
// false if no entry of that length matches.
func (cc *CanonicalCoder) Match(reg *BitArray, length int) (Symbol, bool) {
	if length < 0 || length > MaxCodeLen+1 {
		return InvalidSymbol, false
	}
	start := cc.lenIndex[length]
	for i := start; i < len(cc.bySize) && int(cc.bySize[i].CodeLen) == length; i++ {
		if codesEqual(cc.bySize[i].Code, reg, length) {
			return cc.bySize[i].Symbol, true
		}
	}
	return InvalidSymbol, false
}

func codesEqual(assigned *BitArray, reg *BitArray, length int) bool {
	for i := 0; i < length; i++ {
		a, _ := assigned.Test(i)
		b, _ := reg.Test(i)
		if a != b {
			return false
		}
	}
	return true
}
