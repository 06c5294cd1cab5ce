package nbt

import "errors"

// Errors
var (
	ErrEmptyDocument = errors.New("nbt: empty document")
	ErrNilRoot       = errors.New("nbt: nil root compound")
	ErrBadRootTag    = errors.New("nbt: root tag is not a compound")
	ErrStringTooLong = errors.New("nbt: string exceeds 65535 encoded bytes")
	ErrUnknownTag    = errors.New("nbt: unknown tag byte")
)

// ErrCorrupt is returned if the document was truncated or otherwise corrupt
type ErrCorrupt struct{ Err string }

// internal constants used for corrupt
var (
	errTruncated    = "truncated document"
	errBadListSize  = "bad size for list"
	errBadListType  = "bad element type for list"
	errBadArraySize = "bad size for array"
	errMissingEnd   = "compound not terminated"
)

func (c ErrCorrupt) Error() string { return "nbt: corrupt document: " + c.Err }
