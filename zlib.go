package nbt

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor wraps a document in the zlib envelope used for chunk
// payloads inside region files.
type ZlibCompressor struct {
	Level int // compression level, ZlibDefaultCompression when unset
}

const (
	ZlibBestSpeed          = zlib.BestSpeed
	ZlibBestCompression    = zlib.BestCompression
	ZlibDefaultCompression = zlib.DefaultCompression
)

var zlibWriterPools = make(map[int]*sync.Pool)

func init() {
	// -1 => 9
	for i := zlib.DefaultCompression; i <= zlib.BestCompression; i++ {
		level := i
		zlibWriterPools[i] = &sync.Pool{
			New: func() interface{} {
				zw, _ := zlib.NewWriterLevel(nil, level)
				return zw
			},
		}
	}
}

func (c ZlibCompressor) compress(buf []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = ZlibDefaultCompression
	}

	pool := zlibWriterPools[level]
	if pool == nil {
		return nil, fmt.Errorf("nbt: unknown zlib level %d", level)
	}

	var comp bytes.Buffer
	zw := pool.Get().(*zlib.Writer)
	defer pool.Put(zw)
	zw.Reset(&comp)

	if _, err := zw.Write(buf); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return comp.Bytes(), nil
}

func (c ZlibCompressor) decompress(buf []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var dec bytes.Buffer
	if _, err := dec.ReadFrom(zr); err != nil {
		return nil, err
	}

	return dec.Bytes(), nil
}
