package huffc

import (
	"bytes"
	"fmt"
	"io"
)

// ShowTreeTraditional writes a human-readable listing of
// (symbol, count, code) for every active symbol in a traditional stream's
// header to w, without decoding the payload. Grounded on sample.c's dump
// mode and on the teacher's Dump-to-io.Writer idiom.
func ShowTreeTraditional(r ByteReader, w io.Writer) (int64, error) {
	br := NewBitReader(r)
	counts, err := ReadTraditionalHeader(br)
	if err != nil {
		return 0, err
	}
	tree := BuildTree(counts[:])
	ct := BuildCodeTable(tree)

	var buf bytes.Buffer
	buf.WriteString("Traditional{\n")
	for sym := 0; sym < NumSymbols; sym++ {
		if counts[sym] == 0 {
			continue
		}
		entry := ct.Entry(Symbol(sym))
		fmt.Fprintf(&buf, "\t%3d: count=%d len=%d code=%s\n", sym, counts[sym], entry.CodeLen, entry.Code.Prefix(entry.CodeLen))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// ShowTreeCanonical writes a human-readable listing of (symbol, code_len,
// code) for every active symbol in a canonical stream's header to w.
func ShowTreeCanonical(r ByteReader, w io.Writer) (int64, error) {
	br := NewBitReader(r)
	lengths, err := ReadCanonicalHeader(br)
	if err != nil {
		return 0, err
	}
	cc := BuildCanonicalCoder(lengths[:])

	var buf bytes.Buffer
	buf.WriteString("Canonical{\n")
	for sym, l := range lengths {
		if l == 0 {
			continue
		}
		entry := cc.Entry(Symbol(sym))
		fmt.Fprintf(&buf, "\t%3d: len=%d code=%s\n", sym, entry.CodeLen, entry.Code.Prefix(int(entry.CodeLen)))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
