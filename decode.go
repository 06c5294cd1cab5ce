package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decoder reads NBT documents.
type Decoder struct{}

// Unmarshal sniffs the compression envelope of b, inflates it if one is
// present, and parses the named root compound.
func Unmarshal(b []byte) (string, *Compound, error) {
	d := Decoder{}
	return d.Unmarshal(b)
}

// UnmarshalUncompressed parses b as a raw document, with no envelope
// detection.
func UnmarshalUncompressed(b []byte) (string, *Compound, error) {
	d := Decoder{}
	return d.UnmarshalUncompressed(b)
}

// Unmarshal sniffs the compression envelope of b, inflates it if one is
// present, and parses the named root compound.
func (d *Decoder) Unmarshal(b []byte) (string, *Compound, error) {
	if len(b) == 0 {
		return "", nil, ErrEmptyDocument
	}

	if c := detectCompression(b); c != nil {
		raw, err := c.decompress(b)
		if err != nil {
			return "", nil, fmt.Errorf("nbt: inflating envelope: %w", err)
		}
		b = raw
	}

	return d.UnmarshalUncompressed(b)
}

// UnmarshalUncompressed parses b as a raw document. The first byte must be
// the Compound tag code; anything else is a format violation.
func (d *Decoder) UnmarshalUncompressed(b []byte) (string, *Compound, error) {
	if len(b) == 0 {
		return "", nil, ErrEmptyDocument
	}

	r := &reader{buf: b}

	t, err := r.readByte()
	if err != nil {
		return "", nil, err
	}
	if TagType(t) != TagCompound {
		return "", nil, ErrBadRootTag
	}

	name, err := r.readString()
	if err != nil {
		return "", nil, err
	}

	root, err := r.readCompound()
	if err != nil {
		return "", nil, err
	}

	return name, root, nil
}

// reader owns the read cursor over an immutable byte source. Every read is
// bounds-checked so that truncated input fails instead of running past the
// buffer.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) need(n int) error {
	if n < 0 || r.pos+n > len(r.buf) {
		return ErrCorrupt{errTruncated}
	}
	return nil
}

func (r *reader) readByte() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) readShort() (int16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := int16(binary.BigEndian.Uint16(r.buf[r.pos:]))
	r.pos += 2
	return v, nil
}

func (r *reader) readInt() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.BigEndian.Uint32(r.buf[r.pos:]))
	r.pos += 4
	return v, nil
}

// readLong reads the high 32 bits before the low 32 bits.
func (r *reader) readLong() (int64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := int64(binary.BigEndian.Uint64(r.buf[r.pos:]))
	r.pos += 8
	return v, nil
}

func (r *reader) readFloat() (float32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := math.Float32frombits(binary.BigEndian.Uint32(r.buf[r.pos:]))
	r.pos += 4
	return v, nil
}

func (r *reader) readDouble() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(binary.BigEndian.Uint64(r.buf[r.pos:]))
	r.pos += 8
	return v, nil
}

// readString reads the unsigned 16-bit byte length, then decodes that many
// bytes. The cursor advances by the byte length, not the character count.
func (r *reader) readString() (string, error) {
	if err := r.need(2); err != nil {
		return "", err
	}
	ln := int(binary.BigEndian.Uint16(r.buf[r.pos:]))
	r.pos += 2

	if err := r.need(ln); err != nil {
		return "", err
	}
	s := decodeUTF8(r.buf[r.pos : r.pos+ln])
	r.pos += ln

	return s, nil
}

func (r *reader) readByteArray() (ByteArray, error) {
	n, err := r.readInt()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > len(r.buf)-r.pos {
		return nil, ErrCorrupt{errBadArraySize}
	}

	// copy so the result does not alias the caller's buffer
	b := make(ByteArray, n)
	copy(b, r.buf[r.pos:])
	r.pos += int(n)

	return b, nil
}

func (r *reader) readIntArray() (IntArray, error) {
	n, err := r.readInt()
	if err != nil {
		return nil, err
	}
	if n < 0 || int64(n)*4 > int64(len(r.buf)-r.pos) {
		return nil, ErrCorrupt{errBadArraySize}
	}

	a := make(IntArray, n)
	for i := range a {
		if a[i], err = r.readInt(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (r *reader) readLongArray() (LongArray, error) {
	n, err := r.readInt()
	if err != nil {
		return nil, err
	}
	if n < 0 || int64(n)*8 > int64(len(r.buf)-r.pos) {
		return nil, ErrCorrupt{errBadArraySize}
	}

	a := make(LongArray, n)
	for i := range a {
		if a[i], err = r.readLong(); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// readList reads the declared element type and count, then decodes each
// element through the decoder that type selects.
func (r *reader) readList() (*List, error) {
	t, err := r.readByte()
	if err != nil {
		return nil, err
	}
	elem := TagType(t)
	if !elem.valid() {
		return nil, ErrUnknownTag
	}

	n, err := r.readInt()
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > len(r.buf)-r.pos {
		// every element occupies at least one byte
		return nil, ErrCorrupt{errBadListSize}
	}
	if n > 0 && elem == TagEnd {
		return nil, ErrCorrupt{errBadListType}
	}

	l := &List{ElementType: elem}
	if n > 0 {
		l.Elements = make([]interface{}, 0, n)
	}
	for i := int32(0); i < n; i++ {
		v, err := r.decodeValue(elem)
		if err != nil {
			return nil, err
		}
		l.Elements = append(l.Elements, v)
	}

	return l, nil
}

// readCompound loops reading a type byte until it hits End. There is no
// length prefix bounding the loop, so running out of bytes before the End
// marker is reported as a corrupt document.
func (r *reader) readCompound() (*Compound, error) {
	c := NewCompound()

	for {
		t, err := r.readByte()
		if err != nil {
			return nil, ErrCorrupt{errMissingEnd}
		}

		tt := TagType(t)
		if tt == TagEnd {
			return c, nil
		}
		if !tt.valid() {
			return nil, ErrUnknownTag
		}

		key, err := r.readString()
		if err != nil {
			return nil, err
		}
		v, err := r.decodeValue(tt)
		if err != nil {
			return nil, err
		}

		c.Set(key, v)
	}
}

// decoders maps a tag type to its decode routine, mirroring the encoder
// table.
var decoders [TagLongArray + 1]func(*reader) (interface{}, error)

func init() {
	decoders = [TagLongArray + 1]func(*reader) (interface{}, error){
		TagByte: func(r *reader) (interface{}, error) {
			v, err := r.readByte()
			return Byte(v), err
		},
		TagShort: func(r *reader) (interface{}, error) {
			v, err := r.readShort()
			return Short(v), err
		},
		TagInt: func(r *reader) (interface{}, error) {
			v, err := r.readInt()
			return Int(v), err
		},
		TagLong: func(r *reader) (interface{}, error) {
			v, err := r.readLong()
			return Long(v), err
		},
		TagFloat: func(r *reader) (interface{}, error) {
			v, err := r.readFloat()
			return Float(v), err
		},
		TagDouble: func(r *reader) (interface{}, error) {
			v, err := r.readDouble()
			return Double(v), err
		},
		TagByteArray: func(r *reader) (interface{}, error) {
			v, err := r.readByteArray()
			return v, err
		},
		TagString: func(r *reader) (interface{}, error) {
			v, err := r.readString()
			return String(v), err
		},
		TagList: func(r *reader) (interface{}, error) {
			return r.readList()
		},
		TagCompound: func(r *reader) (interface{}, error) {
			return r.readCompound()
		},
		TagIntArray: func(r *reader) (interface{}, error) {
			v, err := r.readIntArray()
			return v, err
		},
		TagLongArray: func(r *reader) (interface{}, error) {
			v, err := r.readLongArray()
			return v, err
		},
	}
}

func (r *reader) decodeValue(t TagType) (interface{}, error) {
	if t == TagEnd || !t.valid() {
		return nil, ErrUnknownTag
	}
	return decoders[t](r)
}
