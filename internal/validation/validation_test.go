package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathanface/MiniDocter-sub000/core/errors"
)

// TestValidatePath verifies path validation rules.
func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"valid", "chapter.html", nil},
		{"empty", "", ErrEmptyPath},
		{"too long", strings.Repeat("a", MaxPathLength+1), ErrPathTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && err != tt.wantErr {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestValidationErrorsTyped verifies the sentinels are core validation
// errors that unwrap to the invalid-input sentinel.
func TestValidationErrorsTyped(t *testing.T) {
	err := ValidatePath("")
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("ValidatePath(\"\") should unwrap to ErrInvalidInput, got %v", err)
	}
	var verr *errors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("ValidatePath(\"\") should be a *ValidationError, got %T", err)
	}
	if verr.Field != "path" {
		t.Errorf("Field = %q, want \"path\"", verr.Field)
	}
}

// TestReadFileChecked verifies reading an existing file and the missing-file
// error path.
func TestReadFileChecked(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.html")
	if err := os.WriteFile(path, []byte("<p>x</p>"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	data, err := ReadFileChecked(path)
	if err != nil {
		t.Fatalf("ReadFileChecked failed: %v", err)
	}
	if string(data) != "<p>x</p>" {
		t.Errorf("data = %q", data)
	}

	if _, err := ReadFileChecked(filepath.Join(dir, "missing")); err == nil {
		t.Error("missing file should error")
	}
}
