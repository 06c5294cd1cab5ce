package nbt

import (
	"bytes"
	"testing"
)

func TestUTF8Roundtrip(t *testing.T) {

	tests := []string{
		"",
		"hello",
		"héllo wörld",         // two-byte sequences
		"日本語のテキスト",            // three-byte sequences
		"rocket: \U0001F680",  // four-byte sequence
		"mixed: aé日\U0001F680", // every width at once
	}

	for _, s := range tests {
		enc := appendUTF8(nil, s)
		if got := decodeUTF8(enc); got != s {
			t.Errorf("roundtrip failed for %q: got %q", s, got)
		}

		// Go strings are already UTF-8, so the hand-rolled encoder must
		// agree with the source bytes for valid input
		if !bytes.Equal(enc, []byte(s)) {
			t.Errorf("encoding of %q diverges from its UTF-8 bytes: %x vs %x", s, enc, []byte(s))
		}
	}
}

func TestUTF8LenientDecode(t *testing.T) {

	tests := []struct {
		what string
		in   []byte
		want string
	}{
		{
			"bare continuation bytes are skipped",
			[]byte{'A', 0x80, 0xbf, 'B'},
			"AB",
		},
		{
			"0xff is not a recognized leading byte",
			[]byte{'A', 0xff, 'B'},
			"AB",
		},
		{
			"truncated two-byte sequence at the end",
			[]byte{'A', 0xc3},
			"A",
		},
		{
			"truncated four-byte sequence at the end",
			[]byte{'A', 0xf0, 0x9f},
			"A",
		},
	}

	for _, v := range tests {
		if got := decodeUTF8(v.in); got != v.want {
			t.Errorf("%s: got %q, expected %q", v.what, got, v.want)
		}
	}
}

func TestUTF8EncodeWidths(t *testing.T) {

	tests := []struct {
		r    rune
		want []byte
	}{
		{0x24, []byte{0x24}},
		{0xa2, []byte{0xc2, 0xa2}},
		{0x20ac, []byte{0xe2, 0x82, 0xac}},
		{0x10348, []byte{0xf0, 0x90, 0x8d, 0x88}},
	}

	for _, v := range tests {
		got := appendUTF8(nil, string(v.r))
		if !bytes.Equal(got, v.want) {
			t.Errorf("U+%04X: got %x, expected %x", v.r, got, v.want)
		}
	}
}
