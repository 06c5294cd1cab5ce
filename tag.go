package nbt

import "fmt"

// The Go value kinds carried inside a document. A tag payload is one of
// these types, *List or *Compound; anything else is rejected at encode
// time.
type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	String    string
	IntArray  []int32
	LongArray []int64
)

// List is a homogeneous sequence of values. Every element must encode as
// ElementType; an empty list conventionally declares TagEnd.
type List struct {
	ElementType TagType
	Elements    []interface{}
}

// NewList returns a list of the given element type.
func NewList(t TagType, elems ...interface{}) *List {
	return &List{ElementType: t, Elements: elems}
}

// Compound is an insertion-ordered mapping from keys to values. Setting an
// existing key replaces the value but keeps the key's original position, so
// a decode/encode cycle reproduces the input byte-for-byte.
type Compound struct {
	keys   []string
	values map[string]interface{}
}

// NewCompound returns an empty compound.
func NewCompound() *Compound {
	return &Compound{values: make(map[string]interface{})}
}

// Set stores v under key. The last write for a key wins.
func (c *Compound) Set(key string, v interface{}) *Compound {
	if c.values == nil {
		c.values = make(map[string]interface{})
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
	return c
}

// Get returns the value stored under key.
func (c *Compound) Get(key string) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (c *Compound) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of entries.
func (c *Compound) Len() int { return len(c.keys) }

// TypeOf reports the tag type a value will encode as.
func TypeOf(v interface{}) (TagType, error) {
	switch v.(type) {
	case Byte:
		return TagByte, nil
	case Short:
		return TagShort, nil
	case Int:
		return TagInt, nil
	case Long:
		return TagLong, nil
	case Float:
		return TagFloat, nil
	case Double:
		return TagDouble, nil
	case ByteArray:
		return TagByteArray, nil
	case String:
		return TagString, nil
	case *List:
		return TagList, nil
	case *Compound:
		return TagCompound, nil
	case IntArray:
		return TagIntArray, nil
	case LongArray:
		return TagLongArray, nil
	}
	return TagEnd, fmt.Errorf("nbt: no tag type for value of type %T", v)
}
