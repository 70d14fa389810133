package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadSecret             = errors.New("failed to open the source file: incorrect password or unsupported format")
	ErrBadFormat             = errors.New("unsupported source format")
	ErrMissingRequiredColumn = errors.New("missing required column")
	ErrNotFound              = errors.New("not found")
	ErrInvalidState          = errors.New("invalid state")
	ErrCancelled             = errors.New("document generation was cancelled by user request")
)

// JobFatalError aborts a whole job before any row is processed.
type JobFatalError struct {
	Err error
}

func (e *JobFatalError) Error() string {
	return e.Err.Error()
}

func (e *JobFatalError) Unwrap() error {
	return e.Err
}

type RowValidationError struct {
	Violations []string
}

func (e *RowValidationError) Error() string {
	return strings.Join(e.Violations, " | ")
}

type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render template %q: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

type ConversionError struct {
	Input  string
	Stderr string
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("failed to convert %q to pdf: %v", e.Input, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
