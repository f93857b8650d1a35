package huffc

// Symbol represents one entry in the coding alphabet: a byte value in
// 0..255, or the reserved EOFSymbol used by both variants to terminate
// decoding.
type Symbol int32

// NumByteSymbols is the number of ordinary byte symbols in the alphabet.
const NumByteSymbols = 256

// EOFSymbol is the symbol reserved to terminate a stream of either variant.
// It is not a valid byte value; both encoders emit its code once, after the
// payload.
const EOFSymbol = Symbol(NumByteSymbols)

// NumSymbols is the size of the coding alphabet of both variants, including
// EOFSymbol.
const NumSymbols = NumByteSymbols + 1

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// MaxCodeLen is the largest code length this package will ever produce or
// accept for a canonical code, per spec: canonical codes are bounded to 255
// bits so that a code length always fits in one byte.
const MaxCodeLen = 255

// MaxCodeBits is the width of the BitArray used to hold an intermediate,
// left-justified code during tree construction, one bit wider than
// MaxCodeLen to give single-symbol handling room to special-case a depth-0
// leaf as a depth-1 code without overflow.
const MaxCodeBits = 256
