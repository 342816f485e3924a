// internal/input/open.go
package input

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var (
	magicGzip  = []byte{0x1f, 0x8b}
	magicZstd  = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicXZ    = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
	magicBzip2 = []byte("BZh")
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// Open returns a reader over path, decompressing gzip, zstd, xz and bzip2
// transparently. The format is taken from the magic number, falling back to
// the file suffix. "-" reads standard input.
func Open(path string) (io.ReadCloser, error) {
	var src io.ReadCloser
	if path == Stdin {
		src = io.NopCloser(os.Stdin)
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src = fh
	}
	rc, err := decompress(src, path)
	if err != nil {
		_ = src.Close()
		return nil, errors.WithMessagef(err, "%s", path)
	}
	return rc, nil
}

func decompress(src io.ReadCloser, path string) (io.ReadCloser, error) {
	// Peek rather than Seek so stdin works too.
	br := bufio.NewReaderSize(src, 64<<10)
	sig, _ := br.Peek(len(magicXZ))

	switch {
	case bytes.HasPrefix(sig, magicGzip) || strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.WithMessage(err, "gzip")
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, src}}, nil

	case bytes.HasPrefix(sig, magicZstd) || strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, errors.WithMessage(err, "zstd")
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{closerFunc(func() error { zr.Close(); return nil }), src}}, nil

	case bytes.HasPrefix(sig, magicXZ) || strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(br)
		if err != nil {
			return nil, errors.WithMessage(err, "xz")
		}
		return &multiReadCloser{Reader: xr, closers: []io.Closer{src}}, nil

	case bytes.HasPrefix(sig, magicBzip2) || strings.HasSuffix(path, ".bz2"):
		bz, err := bzip2.NewReader(br, nil)
		if err != nil {
			return nil, errors.WithMessage(err, "bzip2")
		}
		return &multiReadCloser{Reader: bz, closers: []io.Closer{bz, src}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{src}}, nil
}
