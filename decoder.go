package huffc

import "fmt"

// DecodeTraditional reverses EncodeTraditional: it parses the header,
// rebuilds the identical HuffmanTree the encoder built (same counts, same
// level-aware tie-break), and walks it bit by bit until the EOF leaf is
// reached.
func DecodeTraditional(r ByteReader, w ByteWriter) error {
	br := NewBitReader(r)
	counts, err := ReadTraditionalHeader(br)
	if err != nil {
		return err
	}

	tree := BuildTree(counts[:])
	if tree == nil {
		// ReadTraditionalHeader always sets counts[EOFSymbol] to 1, so
		// even an empty alphabet yields a single EOF leaf and this
		// branch is not reached; if it were, there is nothing to decode.
		return w.Close()
	}

	node := tree
	for {
		if node.IsLeaf {
			if node.Symbol == EOFSymbol {
				break
			}
			if err := w.WriteByte(byte(node.Symbol)); err != nil {
				return fmt.Errorf("huffc: write output byte: %w", err)
			}
			node = tree
			continue
		}

		bit, err := br.GetBit()
		if err != nil {
			if err == ErrEndOfStream {
				return ErrTruncatedStream
			}
			return fmt.Errorf("huffc: read bit: %w", err)
		}
		if bit == 0 {
			node = node.Left
		} else {
			node = node.Right
		}
	}

	return w.Close()
}

// DecodeCanonical reverses EncodeCanonical: it parses the NumSymbols-byte
// length header, rebuilds the canonical code via BuildCanonicalCoder, and
// matches a growing MSB-first register against entries of the matching
// length until EOFSymbol's code is matched.
//
// Like the traditional variant, the canonical header carries EOFSymbol's
// code length, so decoding terminates on an exact match rather than on
// ByteReader exhaustion: relying on exhaustion alone would decode trailing
// zero-padding bits as spurious extra symbols whenever the dominant
// symbol's code happens to be all zero (per spec.md §9's named fix,
// option (b): adopt the traditional variant's EOF symbol for canonical
// too).
func DecodeCanonical(r ByteReader, w ByteWriter) error {
	br := NewBitReader(r)
	lengths, err := ReadCanonicalHeader(br)
	if err != nil {
		return err
	}

	cc := BuildCanonicalCoder(lengths[:])

	reg := NewBitArray(MaxCodeBits)
	length := 0
	for {
		bit, err := br.GetBit()
		if err != nil {
			if err == ErrEndOfStream {
				return ErrTruncatedStream
			}
			return fmt.Errorf("huffc: read bit: %w", err)
		}

		if bit != 0 {
			_ = reg.Set(length)
		} else {
			_ = reg.Clear(length)
		}
		length++

		if length > MaxCodeLen {
			return ErrInvalidCode
		}

		if sym, ok := cc.Match(reg, length); ok {
			if sym == EOFSymbol {
				break
			}
			if err := w.WriteByte(byte(sym)); err != nil {
				return fmt.Errorf("huffc: write output byte: %w", err)
			}
			reg.ClearAll()
			length = 0
		}
	}

	return w.Close()
}
