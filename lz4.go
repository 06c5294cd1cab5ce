package nbt

import (
	"bytes"

	"github.com/pierrec/lz4/v4"
)

// Lz4Compressor wraps a document in an LZ4 frame, the envelope newer
// region files use for chunk payloads.
type Lz4Compressor struct {
	Level lz4.CompressionLevel // lz4.Fast when unset
}

func (c Lz4Compressor) compress(buf []byte) ([]byte, error) {
	var comp bytes.Buffer

	zw := lz4.NewWriter(&comp)
	if err := zw.Apply(lz4.CompressionLevelOption(c.Level)); err != nil {
		return nil, err
	}

	if _, err := zw.Write(buf); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return comp.Bytes(), nil
}

func (c Lz4Compressor) decompress(buf []byte) ([]byte, error) {
	zr := lz4.NewReader(bytes.NewReader(buf))

	var dec bytes.Buffer
	if _, err := dec.ReadFrom(zr); err != nil {
		return nil, err
	}

	return dec.Bytes(), nil
}
