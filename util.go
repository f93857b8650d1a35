package huffc

import (
	"errors"
	"io"
)

// isEOF reports whether err represents ordinary stream exhaustion, as
// returned by a conforming ByteReader.ReadByte once no bytes remain.
func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
