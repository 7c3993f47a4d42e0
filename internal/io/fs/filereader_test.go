package fs

import (
	"io"
	"os"
	"testing"

	"github.com/DataDog/zstd"

	"github.com/buildnoise/squelch/internal/errs"
	"github.com/buildnoise/squelch/internal/testutil"
)

func TestOpenPlainFile(t *testing.T) {
	path := testutil.TempFile(t, "A\nB\n")

	reader, err := Open(path)
	testutil.AssertNoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, "A\nB\n", string(data))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("/nonexistent/squelch-test.log")
	if !errs.Is(err, errs.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestOpenCompressedFile(t *testing.T) {
	content := "A\nwarning: section .x is deprecated\ny\nz\nB\n"

	tmpfile, err := os.CreateTemp("", "squelch-test-*.zst")
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	writer := zstd.NewWriter(tmpfile)
	_, err = writer.Write([]byte(content))
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, writer.Close())
	testutil.AssertNoError(t, tmpfile.Close())

	reader, err := Open(tmpfile.Name())
	testutil.AssertNoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, content, string(data))
}

func TestIsCompressed(t *testing.T) {
	tests := []struct {
		path       string
		compressed bool
	}{
		{"build.log", false},
		{"build.log.zst", true},
		{"build.log.zstd", true},
		{"build.zst.log", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			testutil.AssertEqual(t, tt.compressed, isCompressed(tt.path))
		})
	}
}
