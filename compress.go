package nbt

import "bytes"

// Compressor wraps a document in a compression envelope and unwraps it
// again. Implementations cover the envelopes NBT payloads show up in:
// gzip for files on disk, zlib for region chunk payloads, LZ4 frames for
// newer region files.
type Compressor interface {
	compress(b []byte) ([]byte, error)
	decompress(b []byte) ([]byte, error)
}

// detectCompression sniffs the envelope magic bytes. A nil return means
// the document is raw.
func detectCompression(b []byte) Compressor {
	switch {
	case len(b) >= 2 && b[0] == gzipMagic[0] && b[1] == gzipMagic[1]:
		return GzipCompressor{}
	case len(b) >= 4 && bytes.Equal(b[:4], lz4Magic):
		return Lz4Compressor{}
	case len(b) >= 2 && isZlibHeader(b[0], b[1]):
		return ZlibCompressor{}
	}
	return nil
}

// A zlib stream opens with a CMF/FLG pair: deflate method in the low CMF
// bits, and the pair as a big-endian 16-bit value is a multiple of 31.
func isZlibHeader(cmf, flg byte) bool {
	return cmf&0x0f == 8 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}
