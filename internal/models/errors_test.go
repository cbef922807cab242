package models

import (
	"errors"
	"io/fs"
	"testing"
)

// TestFileNotFoundError_Unwrap tests that the error matches fs.ErrNotExist
// via errors.Is
func TestFileNotFoundError_Unwrap(t *testing.T) {
	err := error(&FileNotFoundError{Path: "/tmp/missing.docx"})

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false, want true")
	}

	var notFound *FileNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("errors.As failed")
	}
	if notFound.Path != "/tmp/missing.docx" {
		t.Errorf("Path = %q", notFound.Path)
	}
}

// TestParseError_CarriesRaw tests that the raw response survives wrapping
func TestParseError_CarriesRaw(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := error(&ParseError{Stage: "resume analysis", Raw: "not json at all", Cause: cause})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("errors.As failed")
	}
	if parseErr.Raw != "not json at all" {
		t.Errorf("Raw = %q, want original response text", parseErr.Raw)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

// TestErrorMessages tests the rendered messages for each error kind
func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "FileNotFound",
			err:  &FileNotFoundError{Path: "resume.docx"},
			want: "file resume.docx not found",
		},
		{
			name: "UnsupportedInput",
			err:  &UnsupportedInputError{Field: "type", Reason: "must be resume or job"},
			want: `invalid input "type": must be resume or job`,
		},
		{
			name: "Transport",
			err:  &TransportError{Op: "generate content", Cause: errors.New("connection refused")},
			want: "generate content: LLM call failed: connection refused",
		},
		{
			name: "OutputWrite",
			err:  &OutputWriteError{Path: "/readonly/out.txt", Cause: errors.New("permission denied")},
			want: "cannot write output to /readonly/out.txt: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
