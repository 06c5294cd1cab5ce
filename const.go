package nbt

// TagType is the one-byte discriminator that selects the wire layout of a
// tag payload.
type TagType byte

// The closed set of tag types. TagEnd never carries a payload; it only
// terminates a compound.
const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

var tagNames = [...]string{
	TagEnd:       "end",
	TagByte:      "byte",
	TagShort:     "short",
	TagInt:       "int",
	TagLong:      "long",
	TagFloat:     "float",
	TagDouble:    "double",
	TagByteArray: "byteArray",
	TagString:    "string",
	TagList:      "list",
	TagCompound:  "compound",
	TagIntArray:  "intArray",
	TagLongArray: "longArray",
}

func (t TagType) valid() bool {
	return t <= TagLongArray
}

func (t TagType) String() string {
	if !t.valid() {
		return "invalid"
	}
	return tagNames[t]
}

// TagTypeByName returns the tag type with the given name, as produced by
// TagType.String.
func TagTypeByName(name string) (TagType, bool) {
	for t, n := range tagNames {
		if n == name {
			return TagType(t), true
		}
	}
	return TagEnd, false
}

// magic bytes for the supported compression envelopes
var (
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

const initialBufferSize = 1024

// maxStringSize is the format limit on a string's encoded byte length,
// imposed by the unsigned 16-bit length prefix.
const maxStringSize = 0xffff
