package huffc

import (
	"errors"
	"io"
	"math"
)

// Count is a saturating frequency counter: it never exceeds MaxCount, and
// reports overflow via FrequencyCounter.Scan rather than wrapping.
type Count = uint32

// MaxCount is the largest representable Count.
const MaxCount = Count(math.MaxUint32)

// FrequencyCounter performs a single linear pass over a byte stream and
// produces a NumSymbols-entry count table (256 byte symbols plus the
// reserved EOF symbol).
type FrequencyCounter struct {
	counts [NumSymbols]Count
}

// Scan reads r to exhaustion via ReadByte, accumulating counts. It does not
// rewind r; callers that need a second pass call r.Rewind() themselves
// (the encoder drivers do this). If withEOF is true (both encoder drivers
// pass true), counts[EOFSymbol] is unconditionally set to 1 after the scan,
// per spec: EOFSymbol is guaranteed to be an active leaf exactly once.
func (fc *FrequencyCounter) Scan(r ByteReader, withEOF bool) error {
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		sym := Symbol(b)
		if fc.counts[sym] == MaxCount {
			return ErrInputTooLarge
		}
		fc.counts[sym]++
	}
	if withEOF {
		fc.counts[EOFSymbol] = 1
	}
	return nil
}

// Counts returns the accumulated count table, indexed by Symbol.
func (fc *FrequencyCounter) Counts() [NumSymbols]Count {
	return fc.counts
}

// forceCount is a test-only hook (see frequency_test.go) used to exercise
// the InputTooLarge saturation path without actually writing 2^32 bytes.
func (fc *FrequencyCounter) forceCount(sym Symbol, count Count) {
	fc.counts[sym] = count
}
