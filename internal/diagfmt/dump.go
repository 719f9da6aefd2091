package diagfmt

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes the Go structure of v (tokens, trees, programs) for debugging.
func Dump(w io.Writer, v any) {
	dumpConfig.Fdump(w, v)
}
