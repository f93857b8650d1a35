package huffc

import (
	"encoding/binary"
	"fmt"
)

// WriteTraditionalHeader writes one (symbol byte, 4-byte little-endian
// count) pair for every active byte symbol (0..255; EOFSymbol's count is
// never written — the decoder re-inserts it with count 1), followed by a
// symbol=0/count=0 terminator pair.
//
// A real symbol 0 with a genuine count of 0 would be indistinguishable
// from the terminator, but count-0 symbols are never active (the loop
// below skips them), so the collision is benign, per spec.
func WriteTraditionalHeader(bw *BitWriter, counts [NumSymbols]Count) error {
	var countBuf [4]byte
	for sym := 0; sym < NumByteSymbols; sym++ {
		c := counts[sym]
		if c == 0 {
			continue
		}
		if err := bw.PutByte(byte(sym)); err != nil {
			return fmt.Errorf("huffc: write header symbol: %w", err)
		}
		binary.LittleEndian.PutUint32(countBuf[:], c)
		for _, b := range countBuf {
			if err := bw.PutByte(b); err != nil {
				return fmt.Errorf("huffc: write header count: %w", err)
			}
		}
	}
	// Terminator.
	for i := 0; i < 5; i++ {
		if err := bw.PutByte(0); err != nil {
			return fmt.Errorf("huffc: write header terminator: %w", err)
		}
	}
	return nil
}

// ReadTraditionalHeader parses the format WriteTraditionalHeader produces,
// returning a count table with counts[EOFSymbol] set to 1. It returns
// ErrMalformedHeader if the stream ends before the terminator pair.
func ReadTraditionalHeader(br *BitReader) ([NumSymbols]Count, error) {
	var counts [NumSymbols]Count
	for {
		sym, err := br.GetByte()
		if err != nil {
			return counts, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		countBuf := [4]byte{}
		for i := range countBuf {
			b, err := br.GetByte()
			if err != nil {
				return counts, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
			}
			countBuf[i] = b
		}
		count := binary.LittleEndian.Uint32(countBuf[:])
		if sym == 0 && count == 0 {
			break
		}
		counts[sym] = count
	}
	counts[EOFSymbol] = 1
	return counts, nil
}

// WriteCanonicalHeader writes exactly NumSymbols bytes, one per symbol in
// order 0..256, each the symbol's code length (0 for unused). Symbol 256
// is EOFSymbol: the canonical variant embeds its own EOF code length the
// same way the traditional variant embeds EOFSymbol's count, so a decoder
// can stop on the EOF leaf instead of on ByteReader exhaustion — see
// decoder.go's DecodeCanonical.
func WriteCanonicalHeader(bw *BitWriter, lengths [NumSymbols]byte) error {
	for _, l := range lengths {
		if err := bw.PutByte(l); err != nil {
			return fmt.Errorf("huffc: write canonical header: %w", err)
		}
	}
	return nil
}

// ReadCanonicalHeader parses the format WriteCanonicalHeader produces.
func ReadCanonicalHeader(br *BitReader) ([NumSymbols]byte, error) {
	var lengths [NumSymbols]byte
	for i := range lengths {
		b, err := br.GetByte()
		if err != nil {
			return lengths, fmt.Errorf("%w: canonical header truncated: %v", ErrMalformedHeader, err)
		}
		lengths[i] = b
	}
	return lengths, nil
}
