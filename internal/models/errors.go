package models

import (
	"fmt"
	"io/fs"
)

// FileNotFoundError indicates an input path that does not exist. The
// operation is aborted before any LLM call is made.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// UnsupportedInputError indicates an empty or missing required field,
// caught before the pipeline is invoked.
type UnsupportedInputError struct {
	Field  string
	Reason string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// ParseError indicates an LLM response that did not match the expected
// schema. Raw carries the full response text for diagnosis; callers log it
// and abort, never repair or retry.
type ParseError struct {
	Stage string
	Raw   string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: response did not match schema: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("%s: response did not match schema", e.Stage)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// TransportError indicates a failed call to the LLM service (network, auth,
// rate limit). Propagated unchanged to the caller with no automatic retry.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: LLM call failed: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// OutputWriteError indicates the destination path was not writable. It is
// reported after generation succeeds, so the generated content may be lost
// unless the caller re-attempts the save with a new path.
type OutputWriteError struct {
	Path  string
	Cause error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("cannot write output to %s: %v", e.Path, e.Cause)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Cause
}
