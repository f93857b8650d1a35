// Package huffc implements a byte-oriented, lossless Huffman compressor and
// decompressor with two selectable coding variants.
//
// The traditional variant persists per-symbol frequency counts in the
// encoded stream and rebuilds the Huffman tree on decode. The canonical
// variant persists only per-symbol code lengths and rebuilds a canonical
// code from them, per the well-known canonical-Huffman construction.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
//     Michael Dipperstein's ANSI C Huffman library, the implementation this
//     package's on-disk formats are derived from.
//
package huffc
