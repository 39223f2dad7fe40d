package interp

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SystemErrorKind identifies a failure that happens before a single line of
// Lox has run: reading the source file. Grounded on the original
// interpreter's SystemError enum (FileNotFound, InvalidFileExtension).
type SystemErrorKind int

const (
	ErrFileNotFound SystemErrorKind = iota
	ErrInvalidFileExtension
)

type SystemError struct {
	Kind SystemErrorKind
	Path string
}

func (e *SystemError) Error() string {
	switch e.Kind {
	case ErrInvalidFileExtension:
		return "invalid file extension: only '.lox' files are accepted"
	default:
		return fmt.Sprintf("could not find file %q", e.Path)
	}
}

// ResolvePath validates and normalizes a source path the way the original
// run_file did: a bare name gets ".lox" appended, an explicit ".lox"
// extension passes through, and any other extension is rejected before a
// file read is even attempted.
func ResolvePath(path string) (string, error) {
	if strings.HasSuffix(path, ".lox") {
		return path, nil
	}
	if filepath.Ext(path) != "" {
		return "", &SystemError{Kind: ErrInvalidFileExtension, Path: path}
	}
	return path + ".lox", nil
}
