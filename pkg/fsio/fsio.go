// Package fsio opens the flat data files the tools consume. Capture
// pipelines sometimes ship large forwards CSVs and topology dumps
// snappy-compressed; a ".snappy" extension selects transparent
// decompression of the framed stream format.
package fsio

import (
	"io"
	"os"
	"strings"

	"github.com/golang/snappy"
)

// CompressedExt is the extension that marks snappy-framed input files.
const CompressedExt = ".snappy"

type snappyFile struct {
	io.Reader
	file *os.File
}

func (s *snappyFile) Close() error {
	return s.file.Close()
}

// Open opens path for reading. Files ending in CompressedExt are wrapped
// in a snappy stream reader; Close always releases the underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, CompressedExt) {
		return &snappyFile{Reader: snappy.NewReader(f), file: f}, nil
	}
	return f, nil
}

// ReadFile reads the whole file at path, decompressing when marked.
func ReadFile(path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
