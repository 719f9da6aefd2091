// Package diag defines the error model shared by the lexer and the parser.
//
// # Data model
//
// Error is the central record. It contains:
//
//   - Kind – closed set of error categories (kind.go). Each kind maps to a
//     stable code such as "E0001", a display name and a process exit code.
//   - Span – inclusive character offsets into the source.Text the error was
//     produced from. A span is meaningless for any other text.
//   - FileName – label used only for display; empty means "<unknown>".
//   - Message – human oriented text, extended by WithMessage.
//   - Notes – ordered hints, appended by WithNote.
//
// # Rendering
//
// Render produces the human readable report: a header, the file:line:column
// location, the touched source lines and a caret underline under the span.
// Color is not decided here; RenderWith accepts a Painter and internal/diagfmt
// supplies a terminal one.
//
// Abort renders to stderr and terminates the process with the kind's exit
// code. The lexer and parser never call it themselves: they return *Error and
// leave the decision to the driver or CLI.
//
// Bag collects errors from several files for directory runs; one file still
// contributes at most one error because both phases stop at the first fault.
package diag
