package nbt

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// GzipCompressor wraps a document in the gzip envelope used for NBT files
// on disk.
type GzipCompressor struct {
	Level int // compression level, GzipDefaultCompression when unset
}

const (
	GzipBestSpeed          = gzip.BestSpeed
	GzipBestCompression    = gzip.BestCompression
	GzipDefaultCompression = gzip.DefaultCompression
)

var gzipWriterPools = make(map[int]*sync.Pool)

func init() {
	// -1 => 9
	for i := gzip.DefaultCompression; i <= gzip.BestCompression; i++ {
		level := i
		gzipWriterPools[i] = &sync.Pool{
			New: func() interface{} {
				zw, _ := gzip.NewWriterLevel(nil, level)
				return zw
			},
		}
	}
}

func (c GzipCompressor) compress(buf []byte) ([]byte, error) {
	level := c.Level
	if level == 0 {
		level = GzipDefaultCompression
	}

	pool := gzipWriterPools[level]
	if pool == nil {
		return nil, fmt.Errorf("nbt: unknown gzip level %d", level)
	}

	var comp bytes.Buffer
	zw := pool.Get().(*gzip.Writer)
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

func (c GzipCompressor) decompress(buf []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(buf))
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
