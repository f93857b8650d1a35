package huffc

import "testing"

func TestTraditionalHeaderRoundTrip(t *testing.T) {
	var counts [NumSymbols]Count
	counts[Symbol('A')] = 5
	counts[Symbol('B')] = 12
	counts[Symbol(255)] = 1

	w := &memWriter{}
	bw := NewBitWriter(w)
	if err := WriteTraditionalHeader(bw, counts); err != nil {
		t.Fatalf("WriteTraditionalHeader: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	br := NewBitReader(newMemReader(w.data))
	got, err := ReadTraditionalHeader(br)
	if err != nil {
		t.Fatalf("ReadTraditionalHeader: %v", err)
	}
	if got[Symbol('A')] != 5 || got[Symbol('B')] != 12 || got[Symbol(255)] != 1 {
		t.Errorf("round-tripped counts mismatch: A=%d B=%d 255=%d", got[Symbol('A')], got[Symbol('B')], got[Symbol(255)])
	}
	if got[EOFSymbol] != 1 {
		t.Errorf("ReadTraditionalHeader should always set counts[EOFSymbol]=1, got %d", got[EOFSymbol])
	}
}

func TestTraditionalHeaderTruncated(t *testing.T) {
	w := &memWriter{}
	bw := NewBitWriter(w)
	// A symbol byte with no count bytes following, then nothing: never
	// reaches the terminator.
	_ = bw.PutByte('A')
	_ = bw.Close()

	br := NewBitReader(newMemReader(w.data))
	if _, err := ReadTraditionalHeader(br); err == nil {
		t.Errorf("ReadTraditionalHeader on truncated input: want error, got nil")
	}
}

func TestTraditionalHeaderEmptyAlphabet(t *testing.T) {
	var counts [NumSymbols]Count
	w := &memWriter{}
	bw := NewBitWriter(w)
	if err := WriteTraditionalHeader(bw, counts); err != nil {
		t.Fatalf("WriteTraditionalHeader: %v", err)
	}
	_ = bw.Close()

	br := NewBitReader(newMemReader(w.data))
	got, err := ReadTraditionalHeader(br)
	if err != nil {
		t.Fatalf("ReadTraditionalHeader: %v", err)
	}
	if got[EOFSymbol] != 1 {
		t.Errorf("empty-alphabet header should still carry EOFSymbol=1")
	}
}

func TestCanonicalHeaderRoundTrip(t *testing.T) {
	var lengths [NumSymbols]byte
	lengths['A'] = 3
	lengths['Z'] = 7
	lengths[EOFSymbol] = 4

	w := &memWriter{}
	bw := NewBitWriter(w)
	if err := WriteCanonicalHeader(bw, lengths); err != nil {
		t.Fatalf("WriteCanonicalHeader: %v", err)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(w.data) != NumSymbols {
		t.Fatalf("canonical header should be exactly %d bytes, got %d", NumSymbols, len(w.data))
	}

	br := NewBitReader(newMemReader(w.data))
	got, err := ReadCanonicalHeader(br)
	if err != nil {
		t.Fatalf("ReadCanonicalHeader: %v", err)
	}
	if got['A'] != 3 || got['Z'] != 7 || got[EOFSymbol] != 4 {
		t.Errorf("round-tripped lengths mismatch: A=%d Z=%d EOF=%d", got['A'], got['Z'], got[EOFSymbol])
	}
}

func TestCanonicalHeaderTruncated(t *testing.T) {
	w := &memWriter{}
	bw := NewBitWriter(w)
	_ = bw.PutByte(1)
	_ = bw.Close()

	br := NewBitReader(newMemReader(w.data))
	if _, err := ReadCanonicalHeader(br); err == nil {
		t.Errorf("ReadCanonicalHeader on truncated input: want error, got nil")
	}
}
