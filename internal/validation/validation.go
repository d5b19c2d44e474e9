// Package validation provides input validation for user-supplied paths and
// payload size limits on the CLI surface.
package validation

import (
	"fmt"
	"os"

	"github.com/jonathanface/MiniDocter-sub000/core/errors"
)

// Limits on user-supplied input.
const (
	// MaxFileSize is the maximum allowed input file size (64 MB). Chapter
	// HTML and association lists are small; anything larger is a mistake.
	MaxFileSize = 64 << 20
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
)

// Common validation errors. All unwrap to errors.ErrInvalidInput.
var (
	ErrEmptyPath   = errors.NewValidation("path", "cannot be empty")
	ErrPathTooLong = errors.NewValidation("path", "too long")
	ErrFileTooBig  = errors.NewValidation("file", "exceeds size limit")
)

// ValidatePath checks a user-supplied path before it is opened.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	return nil
}

// ReadFileChecked validates the path, checks the size limit, and reads the
// file.
func ReadFileChecked(path string) ([]byte, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s", ErrFileTooBig, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
