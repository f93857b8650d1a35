package huffc

import "fmt"

// EncodeTraditional compresses r to w using the traditional variant: a
// header of (symbol, count) pairs terminated by a zero pair, followed by
// the bit-concatenated codes for every input byte, the EOF code, and
// zero padding to a byte boundary.
//
// Each call owns its own FrequencyCounter, HuffmanTree, and CodeTable; no
// state survives the call, so concurrent calls against independent r/w
// pairs are safe.
func EncodeTraditional(r ByteReader, w ByteWriter) error {
	var fc FrequencyCounter
	if err := fc.Scan(r, true); err != nil {
		return err
	}
	counts := fc.Counts()

	tree := BuildTree(counts[:])
	ct := BuildCodeTable(tree)

	bw := NewBitWriter(w)
	if err := WriteTraditionalHeader(bw, counts); err != nil {
		return err
	}

	if err := r.Rewind(); err != nil {
		return fmt.Errorf("huffc: rewind before encode pass: %w", err)
	}
	if err := emitCodes(r, bw, ct); err != nil {
		return err
	}

	eof := ct.Entry(EOFSymbol)
	if err := bw.PutCode(eof.Code, eof.CodeLen); err != nil {
		return fmt.Errorf("huffc: write EOF code: %w", err)
	}

	return bw.Close()
}

// EncodeCanonical compresses r to w using the canonical variant: a
// NumSymbols-byte header of per-symbol code lengths (including EOFSymbol's),
// followed by the bit-concatenated codes for every input byte, the EOF
// code, and zero padding to a byte boundary.
//
// Like the traditional variant, the canonical alphabet includes EOFSymbol
// so decoding can stop on the EOF leaf rather than on ByteReader
// exhaustion: relying on exhaustion alone lets zero-padding bits that
// happen to spell out a short valid code (e.g. the all-zero code, which a
// single dominant symbol is assigned) decode as spurious trailing symbols.
func EncodeCanonical(r ByteReader, w ByteWriter) error {
	var fc FrequencyCounter
	if err := fc.Scan(r, true); err != nil {
		return err
	}
	counts := fc.Counts()

	tree := BuildTree(counts[:])

	var lengths [NumSymbols]byte
	WalkCodeLengths(tree, func(sym Symbol, depth int) {
		lengths[sym] = byte(depth)
	})

	cc := BuildCanonicalCoder(lengths[:])

	bw := NewBitWriter(w)
	if err := WriteCanonicalHeader(bw, lengths); err != nil {
		return err
	}

	if err := r.Rewind(); err != nil {
		return fmt.Errorf("huffc: rewind before encode pass: %w", err)
	}
	if err := emitCanonicalCodes(r, bw, cc); err != nil {
		return err
	}

	eof := cc.Entry(EOFSymbol)
	if err := bw.PutCode(eof.Code, int(eof.CodeLen)); err != nil {
		return fmt.Errorf("huffc: write canonical EOF code: %w", err)
	}

	return bw.Close()
}

func emitCodes(r ByteReader, bw *BitWriter, ct *CodeTable) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			if isEOF(err) {
				return nil
			}
			return fmt.Errorf("huffc: read input: %w", err)
		}
		entry := ct.Entry(Symbol(b))
		if err := bw.PutCode(entry.Code, entry.CodeLen); err != nil {
			return fmt.Errorf("huffc: write code for byte %#02x: %w", b, err)
		}
	}
}

func emitCanonicalCodes(r ByteReader, bw *BitWriter, cc *CanonicalCoder) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			if isEOF(err) {
				return nil
			}
			return fmt.Errorf("huffc: read input: %w", err)
		}
		entry := cc.Entry(Symbol(b))
		if err := bw.PutCode(entry.Code, int(entry.CodeLen)); err != nil {
			return fmt.Errorf("huffc: write canonical code for byte %#02x: %w", b, err)
		}
	}
}
