package nbt

import (
	"bytes"
	"testing"
)

func TestWriterGrowth(t *testing.T) {

	w := newWriter()

	// fill well past the initial capacity and make sure nothing already
	// written gets corrupted along the way
	for i := 0; i < 3000; i++ {
		w.writeByte(byte(i % 251))
	}

	b := w.data()
	if len(b) != 3000 {
		t.Fatalf("data() returned %d bytes, expected 3000", len(b))
	}

	for i, v := range b {
		if v != byte(i%251) {
			t.Fatalf("byte %d corrupted during growth: got %d", i, v)
		}
	}
}

func TestWriterDataIsExact(t *testing.T) {

	w := newWriter()
	w.writeInt(42)

	if len(w.data()) != 4 {
		t.Errorf("data() returned %d bytes, expected 4", len(w.data()))
	}
	if len(w.buf) != initialBufferSize {
		t.Errorf("buffer grew for a write below the initial capacity")
	}
}

func TestWriterLargePayload(t *testing.T) {

	payload := make(ByteArray, 5000)
	for i := range payload {
		payload[i] = byte(i)
	}

	root := NewCompound().
		Set("marker", String("before")).
		Set("blob", payload).
		Set("after", Int(7))

	b, err := Marshal("big", root)
	if err != nil {
		t.Fatal(err)
	}

	_, unp, err := Unmarshal(b)
	if err != nil {
		t.Fatal(err)
	}

	got, _ := unp.Get("blob")
	if !bytes.Equal(payload, got.(ByteArray)) {
		t.Error("payload corrupted by buffer growth")
	}
	if v, _ := unp.Get("marker"); v != String("before") {
		t.Errorf("value written before growth corrupted: %#v", v)
	}
	if v, _ := unp.Get("after"); v != Int(7) {
		t.Errorf("value written after growth corrupted: %#v", v)
	}
}

func TestStringTooLong(t *testing.T) {

	long := make([]byte, maxStringSize+1)
	for i := range long {
		long[i] = 'a'
	}

	root := NewCompound().Set("s", String(long))

	if _, err := Marshal("", root); err != ErrStringTooLong {
		t.Errorf("expected ErrStringTooLong, got %v", err)
	}

	// the name goes through the same limit
	if _, err := Marshal(string(long), NewCompound()); err != ErrStringTooLong {
		t.Errorf("expected ErrStringTooLong for root name, got %v", err)
	}
}

func TestStringLengthPrefixCountsBytes(t *testing.T) {

	// two-byte runes: the prefix must hold the encoded byte count, not the
	// character count
	s := "héllo"

	w := newWriter()
	if err := w.writeString(s); err != nil {
		t.Fatal(err)
	}

	b := w.data()
	declared := int(b[0])<<8 | int(b[1])
	if declared != len(b)-2 {
		t.Errorf("declared length %d, wrote %d bytes", declared, len(b)-2)
	}
	if declared != 6 {
		t.Errorf("declared length %d, expected 6", declared)
	}
}
