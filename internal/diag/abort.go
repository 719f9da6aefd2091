package diag

import (
	"fmt"
	"io"
	"os"

	"hylo/internal/source"
)

// переопределяются в тестах
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Abort writes the rendered error to stderr and terminates the process with
// the kind's exit code. It does not return.
func (e *Error) Abort(src *source.Text) {
	e.AbortWith(src, Plain)
}

// AbortWith is Abort with a custom Painter.
func (e *Error) AbortWith(src *source.Text, p Painter) {
	fmt.Fprint(stderr, e.RenderWith(src, p))
	exit(e.Kind.ExitCode())
}
