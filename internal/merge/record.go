package merge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

// Per-file failures. These never abort a merge.
var (
	ErrNotFound = errors.New("file does not exist")
	ErrDecode   = errors.New("decode failure")
)

// FileRecord is one input after a read attempt. Exactly one of Content and
// Err is meaningful.
type FileRecord struct {
	Path    string
	Name    string
	Content []byte
	Digest  string // hex BLAKE3, only when requested and the read succeeded
	Err     error
}

// readRecord reads path as UTF-8 text. Missing and non-UTF-8 files come back
// as records carrying ErrNotFound or ErrDecode; any other failure is returned
// as an error.
func readRecord(path string, digest bool) (FileRecord, error) {
	rec := FileRecord{Path: path, Name: baseName(path)}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		rec.Err = ErrNotFound
		return rec, nil
	case err != nil:
		return rec, fmt.Errorf("read %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		rec.Err = ErrDecode
		return rec, nil
	}

	rec.Content = data
	if digest {
		rec.Digest = contentDigest(data)
	}
	return rec, nil
}
