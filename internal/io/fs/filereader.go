// Package fs provides input stream opening for the squelch client. Input
// files compressed with zstd are decompressed transparently, matching the
// compressed log handling of the surrounding build tooling.
package fs

import (
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/buildnoise/squelch/internal/errs"
)

// Open opens an input file for filtering. Files with a .zst or .zstd
// suffix are decompressed on the fly. The caller owns the returned
// ReadCloser.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrapf(errs.ErrFileNotFound, "%s", path)
		}
		return nil, err
	}
	if isCompressed(path) {
		return &compressedReader{file: file, ReadCloser: zstd.NewReader(file)}, nil
	}
	return file, nil
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".zst") || strings.HasSuffix(path, ".zstd")
}

// compressedReader closes the underlying file together with the
// decompressor.
type compressedReader struct {
	io.ReadCloser
	file *os.File
}

func (c *compressedReader) Close() error {
	err := c.ReadCloser.Close()
	if ferr := c.file.Close(); err == nil {
		err = ferr
	}
	return err
}
