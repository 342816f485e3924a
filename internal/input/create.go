package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
)

// writeCloser flushes and closes its layers innermost first.
type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var err error
	for _, c := range w.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Create opens path for writing, compressing by suffix (.gz, .zst, .xz, .bz2)
// so files written here read back through Open. "-" writes standard output.
func Create(path string) (io.WriteCloser, error) {
	var dst io.WriteCloser
	if path == Stdin {
		dst = nopWriteCloser{os.Stdout}
	} else {
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		dst = fh
	}
	bw := bufio.NewWriterSize(dst, 64<<10)
	flush := closerFunc(bw.Flush)

	var (
		cw  io.WriteCloser
		err error
	)
	switch {
	case strings.HasSuffix(path, ".gz"):
		cw = gzip.NewWriter(bw)
	case strings.HasSuffix(path, ".zst"):
		cw, err = zstd.NewWriter(bw)
	case strings.HasSuffix(path, ".xz"):
		cw, err = xz.NewWriter(bw)
	case strings.HasSuffix(path, ".bz2"):
		cw, err = bzip2.NewWriter(bw, nil)
	default:
		return &writeCloser{Writer: bw, closers: []io.Closer{flush, dst}}, nil
	}
	if err != nil {
		_ = dst.Close()
		return nil, errors.WithMessagef(err, "%s", path)
	}
	return &writeCloser{Writer: cw, closers: []io.Closer{cw, flush, dst}}, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
