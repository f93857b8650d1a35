package huffc

import "errors"

// Sentinel errors for the operational failure kinds this package can
// return. I/O failures are not given a distinct sentinel: they are whatever
// error the caller's ByteReader/ByteWriter returned, wrapped with context
// via fmt.Errorf("...: %w", err) at the call site.
var (
	// ErrInputTooLarge is returned by FrequencyCounter when a symbol's
	// count would overflow a 32-bit counter.
	ErrInputTooLarge = errors.New("huffc: symbol count exceeds 2^32-1")

	// ErrMalformedHeader is returned when a header cannot be parsed: end
	// of stream reached before the traditional header's zero-pair
	// terminator, or before all of the canonical header's length bytes.
	ErrMalformedHeader = errors.New("huffc: malformed traditional header")

	// ErrTruncatedStream is returned when a bit stream ends before the
	// EOF symbol (traditional) or before a complete canonical code.
	ErrTruncatedStream = errors.New("huffc: truncated bit stream")

	// ErrInvalidCode is returned when a canonical decode register grows
	// past MaxCodeLen bits without matching any assigned code.
	ErrInvalidCode = errors.New("huffc: invalid or oversized canonical code")

	// ErrOutOfRange is returned by BitArray operations given an index
	// outside 0..Len-1.
	ErrOutOfRange = errors.New("huffc: bit index out of range")

	// ErrLengthMismatch is returned by BitArray binary operations whose
	// operands do not share the same length.
	ErrLengthMismatch = errors.New("huffc: bit array length mismatch")
)
