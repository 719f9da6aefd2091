package diag

import (
	"fmt"

	"hylo/internal/source"
)

// UnknownFile is shown when an error carries no file name.
const UnknownFile = "<unknown>"

// Error is a single self-contained, renderable failure.
type Error struct {
	Kind     Kind        `json:"kind" msgpack:"kind"`
	Span     source.Span `json:"span" msgpack:"span"`
	FileName string      `json:"file,omitempty" msgpack:"file,omitempty"`
	Message  string      `json:"message" msgpack:"message"`
	Notes    []string    `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

// New creates an error with an empty message and no notes.
func New(kind Kind, span source.Span, fileName string) *Error {
	return &Error{
		Kind:     kind,
		Span:     span,
		FileName: fileName,
	}
}

// WithMessage extends the message and returns the same error.
func (e *Error) WithMessage(msg string) *Error {
	e.Message += msg
	return e
}

// WithMessagef is WithMessage with formatting.
func (e *Error) WithMessagef(format string, args ...any) *Error {
	return e.WithMessage(fmt.Sprintf(format, args...))
}

// WithNote appends a note and returns the same error.
func (e *Error) WithNote(note string) *Error {
	e.Notes = append(e.Notes, note)
	return e
}

// File returns the file name or the placeholder.
func (e *Error) File() string {
	if e.FileName == "" {
		return UnknownFile
	}
	return e.FileName
}

// Error implements the error interface with a one-line summary.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %s %s: %s", e.Kind.Code(), e.Kind.Name(), e.File(), e.Message)
}
