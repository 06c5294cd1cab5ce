package nbt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encoder writes NBT documents. The zero value writes uncompressed
// documents; set Compression to wrap the output in an envelope.
type Encoder struct {
	Compression          Compressor // optional envelope, nil means raw
	CompressionThreshold int        // only compress documents this large
}

// Marshal returns the uncompressed NBT encoding of the named root compound.
func Marshal(name string, root *Compound) ([]byte, error) {
	e := Encoder{}
	return e.Marshal(name, root)
}

// Marshal returns the NBT encoding of the named root compound, compressed
// according to the encoder's settings.
func (e *Encoder) Marshal(name string, root *Compound) ([]byte, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	w := newWriter()

	w.writeByte(byte(TagCompound))
	if err := w.writeString(name); err != nil {
		return nil, err
	}
	if err := w.writeCompound(root); err != nil {
		return nil, err
	}

	b := w.data()

	if e.Compression != nil && len(b) >= e.CompressionThreshold {
		return e.Compression.compress(b)
	}

	return b, nil
}

// writer owns the output buffer and the write cursor. The buffer starts at
// a fixed capacity and doubles whenever a write would run past it.
type writer struct {
	buf []byte
	pos int
}

func newWriter() *writer {
	return &writer{buf: make([]byte, initialBufferSize)}
}

// grow makes room for n more bytes at the cursor. A fresh buffer is always
// zeroed, so any gap between the previously written region and a cursor
// moved past it comes out zero-filled.
func (w *writer) grow(n int) {
	if w.pos+n <= len(w.buf) {
		return
	}
	size := len(w.buf) * 2
	for size < w.pos+n {
		size *= 2
	}
	buf := make([]byte, size)
	copy(buf, w.buf)
	w.buf = buf
}

// data returns the written region only, never the full capacity.
func (w *writer) data() []byte {
	return w.buf[:w.pos]
}

func (w *writer) writeByte(v byte) {
	w.grow(1)
	w.buf[w.pos] = v
	w.pos++
}

func (w *writer) writeShort(v int16) {
	w.grow(2)
	binary.BigEndian.PutUint16(w.buf[w.pos:], uint16(v))
	w.pos += 2
}

func (w *writer) writeInt(v int32) {
	w.grow(4)
	binary.BigEndian.PutUint32(w.buf[w.pos:], uint32(v))
	w.pos += 4
}

// writeLong writes the high 32 bits before the low 32 bits.
func (w *writer) writeLong(v int64) {
	w.grow(8)
	binary.BigEndian.PutUint64(w.buf[w.pos:], uint64(v))
	w.pos += 8
}

func (w *writer) writeFloat(v float32) {
	w.grow(4)
	binary.BigEndian.PutUint32(w.buf[w.pos:], math.Float32bits(v))
	w.pos += 4
}

func (w *writer) writeDouble(v float64) {
	w.grow(8)
	binary.BigEndian.PutUint64(w.buf[w.pos:], math.Float64bits(v))
	w.pos += 8
}

func (w *writer) writeBytes(b []byte) {
	w.grow(len(b))
	copy(w.buf[w.pos:], b)
	w.pos += len(b)
}

// writeString writes the encoded byte count as an unsigned 16-bit length,
// then the UTF-8 bytes.
func (w *writer) writeString(s string) error {
	enc := appendUTF8(nil, s)
	if len(enc) > maxStringSize {
		return ErrStringTooLong
	}

	w.grow(2)
	binary.BigEndian.PutUint16(w.buf[w.pos:], uint16(len(enc)))
	w.pos += 2

	w.writeBytes(enc)
	return nil
}

func (w *writer) writeByteArray(b ByteArray) {
	w.writeInt(int32(len(b)))
	w.writeBytes(b)
}

func (w *writer) writeIntArray(a IntArray) {
	w.writeInt(int32(len(a)))
	for _, v := range a {
		w.writeInt(v)
	}
}

func (w *writer) writeLongArray(a LongArray) {
	w.writeInt(int32(len(a)))
	for _, v := range a {
		w.writeLong(v)
	}
}

// writeList writes the declared element type, the element count, then each
// element through the encoder that type selects.
func (w *writer) writeList(l *List) error {
	w.writeByte(byte(l.ElementType))
	w.writeInt(int32(len(l.Elements)))

	for _, el := range l.Elements {
		if err := w.encodeValue(l.ElementType, el); err != nil {
			return err
		}
	}

	return nil
}

// writeCompound writes each entry in insertion order as a type byte, the
// key, then the value, and terminates with a single End byte.
func (w *writer) writeCompound(c *Compound) error {
	for _, key := range c.keys {
		v := c.values[key]

		t, err := TypeOf(v)
		if err != nil {
			return err
		}

		w.writeByte(byte(t))
		if err := w.writeString(key); err != nil {
			return err
		}
		if err := w.encodeValue(t, v); err != nil {
			return err
		}
	}

	w.writeByte(byte(TagEnd))
	return nil
}

// encoders maps a tag type to its encode routine. Built in init so the
// list and compound entries can recurse through the table.
var encoders [TagLongArray + 1]func(*writer, interface{}) error

func init() {
	encoders = [TagLongArray + 1]func(*writer, interface{}) error{
		TagByte: func(w *writer, v interface{}) error {
			b, ok := v.(Byte)
			if !ok {
				return typeMismatch(TagByte, v)
			}
			w.writeByte(byte(b))
			return nil
		},
		TagShort: func(w *writer, v interface{}) error {
			s, ok := v.(Short)
			if !ok {
				return typeMismatch(TagShort, v)
			}
			w.writeShort(int16(s))
			return nil
		},
		TagInt: func(w *writer, v interface{}) error {
			i, ok := v.(Int)
			if !ok {
				return typeMismatch(TagInt, v)
			}
			w.writeInt(int32(i))
			return nil
		},
		TagLong: func(w *writer, v interface{}) error {
			l, ok := v.(Long)
			if !ok {
				return typeMismatch(TagLong, v)
			}
			w.writeLong(int64(l))
			return nil
		},
		TagFloat: func(w *writer, v interface{}) error {
			f, ok := v.(Float)
			if !ok {
				return typeMismatch(TagFloat, v)
			}
			w.writeFloat(float32(f))
			return nil
		},
		TagDouble: func(w *writer, v interface{}) error {
			d, ok := v.(Double)
			if !ok {
				return typeMismatch(TagDouble, v)
			}
			w.writeDouble(float64(d))
			return nil
		},
		TagByteArray: func(w *writer, v interface{}) error {
			b, ok := v.(ByteArray)
			if !ok {
				return typeMismatch(TagByteArray, v)
			}
			w.writeByteArray(b)
			return nil
		},
		TagString: func(w *writer, v interface{}) error {
			s, ok := v.(String)
			if !ok {
				return typeMismatch(TagString, v)
			}
			return w.writeString(string(s))
		},
		TagList: func(w *writer, v interface{}) error {
			l, ok := v.(*List)
			if !ok {
				return typeMismatch(TagList, v)
			}
			return w.writeList(l)
		},
		TagCompound: func(w *writer, v interface{}) error {
			c, ok := v.(*Compound)
			if !ok {
				return typeMismatch(TagCompound, v)
			}
			return w.writeCompound(c)
		},
		TagIntArray: func(w *writer, v interface{}) error {
			a, ok := v.(IntArray)
			if !ok {
				return typeMismatch(TagIntArray, v)
			}
			w.writeIntArray(a)
			return nil
		},
		TagLongArray: func(w *writer, v interface{}) error {
			a, ok := v.(LongArray)
			if !ok {
				return typeMismatch(TagLongArray, v)
			}
			w.writeLongArray(a)
			return nil
		},
	}
}

func (w *writer) encodeValue(t TagType, v interface{}) error {
	if t == TagEnd || !t.valid() {
		return ErrUnknownTag
	}
	return encoders[t](w, v)
}

func typeMismatch(t TagType, v interface{}) error {
	return fmt.Errorf("nbt: cannot encode value of type %T as %s", v, t)
}
