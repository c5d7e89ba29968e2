package textstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/simpletodo/internal/parser"
)

// Plain-text storage. The todo list is a single UTF-8 file edited by hand;
// this package only reads it.

// FileAccessError reports a todo list that could not be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// IsNotExist reports whether err is a FileAccessError for a missing file.
func IsNotExist(err error) bool {
	var fe *FileAccessError
	return errors.As(err, &fe) && errors.Is(fe.Err, os.ErrNotExist)
}

// Load reads the file at path and returns its lines without terminators.
func Load(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return parser.SplitLines(string(b)), nil
}

// EnsureDir creates the parent directory of path so an editor can create
// the file itself.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}
